package repository

import (
	"context"

	"github.com/m-mizutani/kioku/pkg/model"
)

// Repository defines the interface for memo collection persistence. The
// collection is always read and written as a whole; there is no per-record
// access path.
type Repository interface {
	// Load reads the entire memo collection
	Load(ctx context.Context) ([]*model.Memo, error)

	// Save replaces the entire memo collection
	Save(ctx context.Context, memos []*model.Memo) error
}
