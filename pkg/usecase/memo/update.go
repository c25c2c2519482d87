package memo

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/kioku/pkg/model"
)

// UpdateOptions contains the attribute changes for an existing memo. Nil
// fields are not supplied and leave the stored value untouched, so any
// subset of attributes can be updated in one call.
type UpdateOptions struct {
	Content    *string
	Tags       *[]string
	Importance *int
	Emotion    *string
	Context    *string
	RelatedTo  *[]model.MemoID
}

// Update applies the supplied changes to a memo. The effective content and
// importance, meaning the supplied value or the stored one when absent, are
// validated before any field is modified, so a sparse update can never leave
// an invalid record behind. An unknown ID returns (nil, nil) without side
// effects.
func (u *UseCase) Update(ctx context.Context, id model.MemoID, opts UpdateOptions) (*model.Memo, error) {
	memos, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	memo := findMemo(memos, id)
	if memo == nil {
		return nil, nil
	}

	content := memo.Content
	if opts.Content != nil {
		content = *opts.Content
	}
	importance := memo.Importance
	if opts.Importance != nil {
		importance = *opts.Importance
	}
	if err := model.ValidateMemo(content, importance); err != nil {
		return nil, err
	}

	if opts.Content != nil {
		memo.Content = strings.TrimSpace(*opts.Content)
	}
	if opts.Importance != nil {
		memo.Importance = *opts.Importance
	}
	if opts.Tags != nil {
		tags := *opts.Tags
		if tags == nil {
			tags = []string{}
		}
		memo.Tags = tags
	}
	if opts.Emotion != nil {
		memo.Emotion = opts.Emotion
	}
	if opts.Context != nil {
		memo.Context = opts.Context
	}
	if opts.RelatedTo != nil {
		related := *opts.RelatedTo
		if related == nil {
			related = []model.MemoID{}
		}
		memo.RelatedTo = related
	}
	memo.UpdatedAt = time.Now().UTC()

	if err := u.repo.Save(ctx, memos); err != nil {
		return nil, err
	}

	return memo, nil
}
