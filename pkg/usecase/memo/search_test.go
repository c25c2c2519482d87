package memo_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/kioku/pkg/usecase/memo"
)

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query returns nothing", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.Create(ctx, memo.CreateOptions{Content: "something", Importance: 3})
		gt.NoError(t, err)

		for _, query := range []string{"", "   ", "\t"} {
			results, err := uc.Search(ctx, query, 0)
			gt.NoError(t, err)
			gt.A(t, results).Length(0)
		}
	})

	t.Run("matches are case-insensitive across fields", func(t *testing.T) {
		uc := newTestUseCase(t)
		byContent, err := uc.Create(ctx, memo.CreateOptions{Content: "Remember the MILK", Importance: 2})
		gt.NoError(t, err)
		byTag, err := uc.Create(ctx, memo.CreateOptions{
			Content:    "unrelated text",
			Tags:       []string{"milk-run"},
			Importance: 1,
		})
		gt.NoError(t, err)
		byContext, err := uc.Create(ctx, memo.CreateOptions{
			Content:    "shopping list",
			Importance: 3,
			Context:    ptr("Milk Aisle"),
		})
		gt.NoError(t, err)
		byEmotion, err := uc.Create(ctx, memo.CreateOptions{
			Content:    "note to self",
			Importance: 4,
			Emotion:    ptr("milky calm"),
		})
		gt.NoError(t, err)
		_, err = uc.Create(ctx, memo.CreateOptions{Content: "no match here", Importance: 5})
		gt.NoError(t, err)

		results, err := uc.Search(ctx, "milk", 0)
		gt.NoError(t, err)
		gt.A(t, results).Length(4)

		// Sorted importance-descending
		gt.Equal(t, results[0].ID, byEmotion.ID)
		gt.Equal(t, results[1].ID, byContext.ID)
		gt.Equal(t, results[2].ID, byContent.ID)
		gt.Equal(t, results[3].ID, byTag.ID)
	})

	t.Run("surrounding whitespace in the query is ignored", func(t *testing.T) {
		uc := newTestUseCase(t)
		created, err := uc.Create(ctx, memo.CreateOptions{Content: "pick up milk after work", Importance: 2})
		gt.NoError(t, err)

		results, err := uc.Search(ctx, "  milk  ", 0)
		gt.NoError(t, err)
		gt.A(t, results).Length(1)
		gt.Equal(t, results[0].ID, created.ID)
	})

	t.Run("a memo matching several fields appears once", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.Create(ctx, memo.CreateOptions{
			Content:    "golang tips",
			Tags:       []string{"golang"},
			Importance: 3,
			Context:    ptr("golang study"),
		})
		gt.NoError(t, err)

		results, err := uc.Search(ctx, "golang", 0)
		gt.NoError(t, err)
		gt.A(t, results).Length(1)
	})

	t.Run("limit truncates after the stable sort", func(t *testing.T) {
		uc := newTestUseCase(t)
		top, err := uc.Create(ctx, memo.CreateOptions{Content: "abc most important", Importance: 5})
		gt.NoError(t, err)
		second, err := uc.Create(ctx, memo.CreateOptions{Content: "abc earlier", Importance: 3})
		gt.NoError(t, err)
		_, err = uc.Create(ctx, memo.CreateOptions{Content: "abc later", Importance: 3})
		gt.NoError(t, err)

		results, err := uc.Search(ctx, "abc", 2)
		gt.NoError(t, err)
		gt.A(t, results).Length(2)
		gt.Equal(t, results[0].ID, top.ID)
		// Of the two importance-3 memos, the one stored first wins the
		// remaining slot.
		gt.Equal(t, results[1].ID, second.ID)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		uc := newTestUseCase(t)
		for i := 0; i < 3; i++ {
			_, err := uc.Create(ctx, memo.CreateOptions{Content: "common term", Importance: 2})
			gt.NoError(t, err)
		}

		results, err := uc.Search(ctx, "common", 0)
		gt.NoError(t, err)
		gt.A(t, results).Length(3)
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		uc := newTestUseCase(t)
		_, err := uc.Create(ctx, memo.CreateOptions{Content: "something else", Importance: 3})
		gt.NoError(t, err)

		results, err := uc.Search(ctx, "zzz-not-there", 0)
		gt.NoError(t, err)
		gt.A(t, results).Length(0)
	})
}
