package memo

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/kioku/pkg/model"
)

// CreateOptions contains the attributes of a new memo
type CreateOptions struct {
	Content    string
	Tags       []string
	Importance int
	Emotion    *string
	Context    *string
	RelatedTo  []model.MemoID
}

// Create validates the given attributes, appends a new memo to the
// collection and persists it. Content is stored with surrounding whitespace
// trimmed. Importance is taken as given; callers that want a default or
// clamping must apply it themselves.
func (u *UseCase) Create(ctx context.Context, opts CreateOptions) (*model.Memo, error) {
	if err := model.ValidateMemo(opts.Content, opts.Importance); err != nil {
		return nil, err
	}

	memos, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	tags := opts.Tags
	if tags == nil {
		tags = []string{}
	}
	related := opts.RelatedTo
	if related == nil {
		related = []model.MemoID{}
	}

	now := time.Now().UTC()
	memo := &model.Memo{
		ID:         model.NewMemoID(),
		Content:    strings.TrimSpace(opts.Content),
		Tags:       tags,
		Importance: opts.Importance,
		Emotion:    opts.Emotion,
		Context:    opts.Context,
		RelatedTo:  related,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	memos = append(memos, memo)
	if err := u.repo.Save(ctx, memos); err != nil {
		return nil, err
	}

	return memo, nil
}
