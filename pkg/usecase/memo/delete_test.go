package memo_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/kioku/pkg/model"
	"github.com/m-mizutani/kioku/pkg/repository"
	"github.com/m-mizutani/kioku/pkg/usecase/memo"
)

// countingRepo records how many times the collection is saved
type countingRepo struct {
	repository.Repository
	saves int
}

func (r *countingRepo) Save(ctx context.Context, memos []*model.Memo) error {
	r.saves++
	return r.Repository.Save(ctx, memos)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes references from other memos", func(t *testing.T) {
		uc := newTestUseCase(t)
		target, err := uc.Create(ctx, memo.CreateOptions{Content: "to be deleted", Importance: 1})
		gt.NoError(t, err)
		holder, err := uc.Create(ctx, memo.CreateOptions{
			Content:    "keeps references",
			Importance: 2,
			RelatedTo:  []model.MemoID{target.ID, "unrelated", target.ID},
		})
		gt.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		deleted, err := uc.Delete(ctx, target.ID)
		gt.NoError(t, err)
		gt.True(t, deleted)

		gone, err := uc.Get(ctx, target.ID)
		gt.NoError(t, err)
		gt.True(t, gone == nil)

		// Every occurrence of the deleted ID is gone and the holder's
		// updated_at moved forward.
		kept, err := uc.Get(ctx, holder.ID)
		gt.NoError(t, err)
		gt.NotNil(t, kept)
		gt.Equal(t, kept.RelatedTo, []model.MemoID{"unrelated"})
		gt.True(t, kept.UpdatedAt.After(holder.UpdatedAt))

		// A second delete is a plain negative result and leaves the
		// remaining memos untouched.
		deleted, err = uc.Delete(ctx, target.ID)
		gt.NoError(t, err)
		gt.True(t, !deleted)

		again, err := uc.Get(ctx, holder.ID)
		gt.NoError(t, err)
		gt.Equal(t, again.RelatedTo, []model.MemoID{"unrelated"})
		gt.True(t, again.UpdatedAt.Equal(kept.UpdatedAt))
	})

	t.Run("unreferencing memos keep their updated_at", func(t *testing.T) {
		uc := newTestUseCase(t)
		target, err := uc.Create(ctx, memo.CreateOptions{Content: "target", Importance: 1})
		gt.NoError(t, err)
		bystander, err := uc.Create(ctx, memo.CreateOptions{Content: "bystander", Importance: 1})
		gt.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		deleted, err := uc.Delete(ctx, target.ID)
		gt.NoError(t, err)
		gt.True(t, deleted)

		got, err := uc.Get(ctx, bystander.ID)
		gt.NoError(t, err)
		gt.True(t, got.UpdatedAt.Equal(bystander.UpdatedAt))
	})

	t.Run("cleanup and removal are one save", func(t *testing.T) {
		repo := &countingRepo{Repository: repository.NewMemory()}
		uc := memo.New(repo)

		target, err := uc.Create(ctx, memo.CreateOptions{Content: "target", Importance: 1})
		gt.NoError(t, err)
		_, err = uc.Create(ctx, memo.CreateOptions{
			Content:    "holder",
			Importance: 1,
			RelatedTo:  []model.MemoID{target.ID},
		})
		gt.NoError(t, err)

		repo.saves = 0
		deleted, err := uc.Delete(ctx, target.ID)
		gt.NoError(t, err)
		gt.True(t, deleted)
		gt.Equal(t, repo.saves, 1)
	})

	t.Run("unknown id does not save at all", func(t *testing.T) {
		repo := &countingRepo{Repository: repository.NewMemory()}
		uc := memo.New(repo)

		_, err := uc.Create(ctx, memo.CreateOptions{Content: "only one", Importance: 1})
		gt.NoError(t, err)

		repo.saves = 0
		deleted, err := uc.Delete(ctx, model.MemoID("missing"))
		gt.NoError(t, err)
		gt.True(t, !deleted)
		gt.Equal(t, repo.saves, 0)
	})
}
