package cli

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kioku/pkg/repository"
	"github.com/m-mizutani/kioku/pkg/usecase/memo"
	"github.com/m-mizutani/kioku/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// config holds configuration values shared across commands
type config struct {
	memoFile string
	logLevel string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "memo-file",
			Aliases:     []string{"f"},
			Usage:       "Path to the JSON file holding the memo collection",
			Sources:     cli.EnvVars("KIOKU_MEMO_FILE"),
			Destination: &cfg.memoFile,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("KIOKU_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
	}
}

// resolveMemoFile returns the backing file path. When not configured, the
// collection lives in memos.json next to the executable; the path is fixed
// for the lifetime of the process.
func (cfg *config) resolveMemoFile() string {
	if cfg.memoFile != "" {
		return cfg.memoFile
	}

	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), "memos.json")
	}
	return "memos.json"
}

// newRepository creates a repository on the configured backing file
func (cfg *config) newRepository() (repository.Repository, error) {
	repo, err := repository.NewLocal(cfg.resolveMemoFile())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository")
	}
	return repo, nil
}

// newUseCase creates a memo UseCase over the configured repository
func (cfg *config) newUseCase() (*memo.UseCase, error) {
	repo, err := cfg.newRepository()
	if err != nil {
		return nil, err
	}
	return memo.New(repo), nil
}

// setupLogger installs the default logger at the configured level
func (cfg *config) setupLogger() {
	logging.SetDefault(logging.New(cfg.logLevel, os.Stderr))
}
