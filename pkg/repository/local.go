package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kioku/pkg/model"
	"github.com/m-mizutani/kioku/pkg/utils/logging"
)

// localRepo implements Repository on a single JSON file
type localRepo struct {
	path string
}

// NewLocal creates a Repository backed by the JSON file at path. The file
// does not need to exist yet; it is initialized to an empty collection on
// first access.
func NewLocal(path string) (Repository, error) {
	if path == "" {
		return nil, goerr.New("memo file path is empty")
	}
	return &localRepo{path: path}, nil
}

// ensureFile initializes the backing file with an empty collection when it
// does not exist yet
func (r *localRepo) ensureFile() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to stat memo file", goerr.V("path", r.path))
	}

	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return goerr.Wrap(err, "failed to create memo directory", goerr.V("dir", dir))
		}
	}

	if err := os.WriteFile(r.path, []byte("[]"), 0644); err != nil {
		return goerr.Wrap(err, "failed to initialize memo file", goerr.V("path", r.path))
	}

	return nil
}

func (r *localRepo) Load(ctx context.Context) ([]*model.Memo, error) {
	if err := r.ensureFile(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read memo file", goerr.V("path", r.path))
	}

	var memos []*model.Memo
	if err := json.Unmarshal(raw, &memos); err != nil {
		// A broken file must not lock out the store. Continue with an empty
		// collection; the file keeps its current bytes until the next Save.
		logging.From(ctx).Warn("memo file is not a valid collection, starting empty",
			"path", r.path, "error", err)
		return []*model.Memo{}, nil
	}

	if memos == nil {
		memos = []*model.Memo{}
	}

	return memos, nil
}

func (r *localRepo) Save(ctx context.Context, memos []*model.Memo) error {
	if memos == nil {
		memos = []*model.Memo{}
	}

	raw, err := json.MarshalIndent(memos, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode memo collection")
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create memo directory", goerr.V("dir", dir))
	}

	// Prepare the full content in a temporary file and swap it in, so the
	// previous collection survives a failed write.
	tmp, err := os.CreateTemp(dir, ".memos-*.json")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary memo file", goerr.V("dir", dir))
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to write memo file", goerr.V("path", tmpPath))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to close memo file", goerr.V("path", tmpPath))
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to replace memo file", goerr.V("path", r.path))
	}

	return nil
}
