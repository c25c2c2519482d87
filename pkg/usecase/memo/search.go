package memo

import (
	"context"
	"strings"

	"github.com/m-mizutani/kioku/pkg/model"
)

// Search finds memos whose content, tags, context or emotion contain the
// query as a case-insensitive substring. Surrounding whitespace on the query
// is ignored. Fields are checked in that order and a memo matches at most
// once no matter how many of its fields hit. Results are sorted by
// importance in descending order, stable among equal importance, then capped
// when limit is positive. An empty or whitespace query returns no results.
func (u *UseCase) Search(ctx context.Context, query string, limit int) ([]*model.Memo, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []*model.Memo{}, nil
	}

	memos, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Memo, 0, len(memos))
	for _, m := range memos {
		if memoMatches(m, q) {
			matched = append(matched, m)
		}
	}

	sortByImportance(matched)
	return capLimit(matched, limit), nil
}

func memoMatches(m *model.Memo, q string) bool {
	if strings.Contains(strings.ToLower(m.Content), q) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	if m.Context != nil && strings.Contains(strings.ToLower(*m.Context), q) {
		return true
	}
	if m.Emotion != nil && strings.Contains(strings.ToLower(*m.Emotion), q) {
		return true
	}
	return false
}
