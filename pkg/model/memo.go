package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrEmptyContent      = goerr.New("memo content is empty")
	ErrInvalidImportance = goerr.New("memo importance is out of range")
)

const (
	MinImportance = 1
	MaxImportance = 5
)

type MemoID string

// NewMemoID generates a new unique MemoID
func NewMemoID() MemoID {
	return MemoID(uuid.New().String())
}

// Memo represents a single stored note. The json tags define the record
// layout of the backing file; Emotion and Context stay pointer-typed without
// omitempty so that an absent value is written as explicit null and records
// round-trip losslessly.
type Memo struct {
	ID         MemoID    `json:"id"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	Importance int       `json:"importance"`
	Emotion    *string   `json:"emotion"`
	Context    *string   `json:"context"`
	RelatedTo  []MemoID  `json:"related_to"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate checks if the memo is valid
func (m *Memo) Validate() error {
	return ValidateMemo(m.Content, m.Importance)
}

// ValidateMemo checks a (content, importance) pair before it is stored.
// Content must keep at least one non-whitespace character, and importance
// must be within [MinImportance, MaxImportance]. Importance is never
// adjusted here; out-of-range values are rejected as-is.
func ValidateMemo(content string, importance int) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if importance < MinImportance || importance > MaxImportance {
		return goerr.Wrap(ErrInvalidImportance, "importance must be between 1 and 5", goerr.V("importance", importance))
	}
	return nil
}
