package model

// Stats is an aggregate view over the whole memo collection. Slice fields
// are always non-nil so an empty collection serializes as [] rather than
// null. ImportanceDistribution carries every grade from MinImportance to
// MaxImportance when the collection is non-empty, including zero counts.
type Stats struct {
	TotalCount             int         `json:"total_count"`
	TagsCount              int         `json:"tags_count"`
	UniqueTags             []string    `json:"unique_tags"`
	Contexts               []string    `json:"contexts"`
	Emotions               []string    `json:"emotions"`
	ImportanceDistribution map[int]int `json:"importance_distribution"`
}
