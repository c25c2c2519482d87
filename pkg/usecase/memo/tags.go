package memo

import (
	"context"

	"github.com/m-mizutani/kioku/pkg/model"
)

// FilterByTags retrieves memos carrying at least one of the given tags,
// sorted by importance in descending order. Overlap with any single tag
// qualifies; an empty tag list matches nothing.
func (u *UseCase) FilterByTags(ctx context.Context, tags []string) ([]*model.Memo, error) {
	if len(tags) == 0 {
		return []*model.Memo{}, nil
	}

	memos, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Memo, 0, len(memos))
	for _, m := range memos {
		if hasAnyTag(m, tags) {
			matched = append(matched, m)
		}
	}

	sortByImportance(matched)
	return matched, nil
}
