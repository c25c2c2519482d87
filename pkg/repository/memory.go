package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/kioku/pkg/model"
)

// memoryRepo implements Repository without a backing file. It is used by
// tests and by embedders that do not need persistence across restarts.
type memoryRepo struct {
	mu    sync.Mutex
	memos []*model.Memo
}

// NewMemory creates a volatile in-memory Repository
func NewMemory() Repository {
	return &memoryRepo{memos: []*model.Memo{}}
}

func (r *memoryRepo) Load(ctx context.Context) ([]*model.Memo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneMemos(r.memos), nil
}

func (r *memoryRepo) Save(ctx context.Context, memos []*model.Memo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.memos = cloneMemos(memos)
	return nil
}

// cloneMemos deep-copies a collection so callers never alias stored records
func cloneMemos(memos []*model.Memo) []*model.Memo {
	cloned := make([]*model.Memo, 0, len(memos))
	for _, m := range memos {
		cloned = append(cloned, cloneMemo(m))
	}
	return cloned
}

func cloneMemo(m *model.Memo) *model.Memo {
	c := *m
	if m.Tags != nil {
		c.Tags = make([]string, len(m.Tags))
		copy(c.Tags, m.Tags)
	}
	if m.RelatedTo != nil {
		c.RelatedTo = make([]model.MemoID, len(m.RelatedTo))
		copy(c.RelatedTo, m.RelatedTo)
	}
	if m.Emotion != nil {
		v := *m.Emotion
		c.Emotion = &v
	}
	if m.Context != nil {
		v := *m.Context
		c.Context = &v
	}
	return &c
}
