package memo

import (
	"context"

	"github.com/m-mizutani/kioku/pkg/model"
)

// GetAll returns every memo in stored order
func (u *UseCase) GetAll(ctx context.Context) ([]*model.Memo, error) {
	return u.repo.Load(ctx)
}

// Get retrieves a single memo by ID. An unknown ID is a negative result,
// not an error: the returned memo is nil.
func (u *UseCase) Get(ctx context.Context, id model.MemoID) (*model.Memo, error) {
	memos, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return findMemo(memos, id), nil
}

func findMemo(memos []*model.Memo, id model.MemoID) *model.Memo {
	for _, m := range memos {
		if m.ID == id {
			return m
		}
	}
	return nil
}
