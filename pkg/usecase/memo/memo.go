package memo

import (
	"github.com/m-mizutani/kioku/pkg/repository"
)

// UseCase provides memo-related operations. Every operation is a
// self-contained load, compute and save over the full collection; nothing
// is cached between calls, so the backing store is always the source of
// truth.
type UseCase struct {
	repo repository.Repository
}

// New creates a new memo UseCase instance
func New(repo repository.Repository) *UseCase {
	return &UseCase{repo: repo}
}
