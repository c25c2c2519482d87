package memo

import (
	"context"
	"time"

	"github.com/m-mizutani/kioku/pkg/model"
)

// Delete removes a memo and every reference to it. Other memos holding the
// deleted ID in related_to lose every occurrence of that reference and get
// a fresh updated_at. The cleanup and the removal are persisted in a single
// save, so no intermediate state ever reaches the backing store. An unknown
// ID returns false without side effects.
func (u *UseCase) Delete(ctx context.Context, id model.MemoID) (bool, error) {
	memos, err := u.repo.Load(ctx)
	if err != nil {
		return false, err
	}

	if findMemo(memos, id) == nil {
		return false, nil
	}

	now := time.Now().UTC()
	remaining := make([]*model.Memo, 0, len(memos)-1)
	for _, m := range memos {
		if m.ID == id {
			continue
		}
		if removeRelated(m, id) {
			m.UpdatedAt = now
		}
		remaining = append(remaining, m)
	}

	if err := u.repo.Save(ctx, remaining); err != nil {
		return false, err
	}

	return true, nil
}

// removeRelated drops every occurrence of id from the memo's related_to and
// reports whether anything was removed
func removeRelated(m *model.Memo, id model.MemoID) bool {
	kept := make([]model.MemoID, 0, len(m.RelatedTo))
	for _, ref := range m.RelatedTo {
		if ref == id {
			continue
		}
		kept = append(kept, ref)
	}

	if len(kept) == len(m.RelatedTo) {
		return false
	}

	m.RelatedTo = kept
	return true
}
