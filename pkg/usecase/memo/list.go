package memo

import (
	"cmp"
	"context"
	"slices"

	"github.com/m-mizutani/kioku/pkg/model"
)

// ListOptions contains filter conditions for listing memos. Zero values
// disable the corresponding condition, and supplied conditions are combined
// with AND.
type ListOptions struct {
	Tags          []string
	MinImportance int
	Context       string
	Limit         int
}

// List retrieves memos matching every supplied condition, sorted by
// importance in descending order
func (u *UseCase) List(ctx context.Context, opts ListOptions) ([]*model.Memo, error) {
	memos, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*model.Memo, 0, len(memos))
	for _, m := range memos {
		if len(opts.Tags) > 0 && !hasAnyTag(m, opts.Tags) {
			continue
		}
		if opts.MinImportance > 0 && m.Importance < opts.MinImportance {
			continue
		}
		if opts.Context != "" && (m.Context == nil || *m.Context != opts.Context) {
			continue
		}
		filtered = append(filtered, m)
	}

	sortByImportance(filtered)
	return capLimit(filtered, opts.Limit), nil
}

// hasAnyTag reports whether the memo carries at least one of the given tags
func hasAnyTag(m *model.Memo, tags []string) bool {
	for _, want := range tags {
		if slices.Contains(m.Tags, want) {
			return true
		}
	}
	return false
}

// sortByImportance orders memos by importance in descending order. The sort
// is stable so memos of equal importance keep their stored order.
func sortByImportance(memos []*model.Memo) {
	slices.SortStableFunc(memos, func(a, b *model.Memo) int {
		return cmp.Compare(b.Importance, a.Importance)
	})
}

func capLimit(memos []*model.Memo, limit int) []*model.Memo {
	if limit > 0 && len(memos) > limit {
		return memos[:limit]
	}
	return memos
}
