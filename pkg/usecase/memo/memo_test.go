package memo_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/kioku/pkg/model"
	"github.com/m-mizutani/kioku/pkg/repository"
	"github.com/m-mizutani/kioku/pkg/usecase/memo"
)

// newTestUseCase builds a UseCase over a real file-backed repository in a
// temporary directory
func newTestUseCase(t *testing.T) *memo.UseCase {
	t.Helper()

	repo, err := repository.NewLocal(filepath.Join(t.TempDir(), "memos.json"))
	gt.NoError(t, err)

	return memo.New(repo)
}

func ptr[T any](v T) *T {
	return &v
}

// failingRepo wraps a Repository and fails Save while saveErr is set
type failingRepo struct {
	repository.Repository
	saveErr error
}

func (r *failingRepo) Save(ctx context.Context, memos []*model.Memo) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	return r.Repository.Save(ctx, memos)
}

func TestSaveFailurePropagation(t *testing.T) {
	ctx := context.Background()
	repo := &failingRepo{Repository: repository.NewMemory()}
	uc := memo.New(repo)

	seeded, err := uc.Create(ctx, memo.CreateOptions{Content: "stable", Importance: 2})
	gt.NoError(t, err)

	saveErr := errors.New("save failed")
	repo.saveErr = saveErr

	t.Run("create", func(t *testing.T) {
		_, err := uc.Create(ctx, memo.CreateOptions{Content: "lost", Importance: 1})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, saveErr))
	})

	t.Run("update", func(t *testing.T) {
		_, err := uc.Update(ctx, seeded.ID, memo.UpdateOptions{Content: ptr("changed")})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, saveErr))
	})

	t.Run("delete", func(t *testing.T) {
		_, err := uc.Delete(ctx, seeded.ID)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, saveErr))
	})

	// Every failed save left the stored collection exactly as it was
	repo.saveErr = nil
	all, err := uc.GetAll(ctx)
	gt.NoError(t, err)
	gt.A(t, all).Length(1)
	gt.Equal(t, all[0].ID, seeded.ID)
	gt.Equal(t, all[0].Content, "stable")
	gt.True(t, all[0].UpdatedAt.Equal(seeded.UpdatedAt))
}
