package memo

import (
	"context"
	"slices"

	"github.com/m-mizutani/kioku/pkg/model"
)

// Stats aggregates the whole collection into counts and distinct value
// sets. Absent and empty contexts and emotions contribute nothing to the
// distinct sets. On a non-empty collection the importance distribution
// carries every grade from 1 to 5, including zero counts.
func (u *UseCase) Stats(ctx context.Context) (*model.Stats, error) {
	memos, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.Stats{
		UniqueTags:             []string{},
		Contexts:               []string{},
		Emotions:               []string{},
		ImportanceDistribution: map[int]int{},
	}
	if len(memos) == 0 {
		return stats, nil
	}

	for i := model.MinImportance; i <= model.MaxImportance; i++ {
		stats.ImportanceDistribution[i] = 0
	}

	tagSet := map[string]struct{}{}
	contextSet := map[string]struct{}{}
	emotionSet := map[string]struct{}{}
	for _, m := range memos {
		for _, tag := range m.Tags {
			tagSet[tag] = struct{}{}
		}
		if m.Context != nil && *m.Context != "" {
			contextSet[*m.Context] = struct{}{}
		}
		if m.Emotion != nil && *m.Emotion != "" {
			emotionSet[*m.Emotion] = struct{}{}
		}
		if _, ok := stats.ImportanceDistribution[m.Importance]; ok {
			stats.ImportanceDistribution[m.Importance]++
		}
	}

	stats.TotalCount = len(memos)
	stats.TagsCount = len(tagSet)
	stats.UniqueTags = sortedKeys(tagSet)
	stats.Contexts = sortedKeys(contextSet)
	stats.Emotions = sortedKeys(emotionSet)

	return stats, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
