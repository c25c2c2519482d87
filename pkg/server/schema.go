package server

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// Tool input schemas are declared explicitly rather than inferred from the
// parameter structs. The importance properties carry no numeric bounds:
// the transport must not reject out-of-range values before the handlers
// clamp them.

func createMemoSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"content": {
				Type:        "string",
				Description: "Memo content",
			},
			"tags": {
				Type:        "array",
				Description: "Tags for grouping and lookup",
				Items:       &jsonschema.Schema{Type: "string"},
			},
			"importance": {
				Type:        "integer",
				Description: "Importance from 1 (lowest) to 5 (highest); out-of-range values are clamped, omitted means 1",
			},
			"emotion": {
				Type:        "string",
				Description: "Emotion associated with the memo",
			},
			"context": {
				Type:        "string",
				Description: "Conversational context the memo belongs to",
			},
			"related_to": {
				Type:        "array",
				Description: "IDs of related memos",
				Items:       &jsonschema.Schema{Type: "string"},
			},
		},
		Required: []string{"content"},
	}
}

func getMemosSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"limit": {
				Type:        "integer",
				Description: "Maximum number of memos to return",
			},
			"tags": {
				Type:        "array",
				Description: "Return only memos carrying at least one of these tags",
				Items:       &jsonschema.Schema{Type: "string"},
			},
			"importance_min": {
				Type:        "integer",
				Description: "Return only memos with at least this importance",
			},
			"context": {
				Type:        "string",
				Description: "Return only memos with exactly this context",
			},
		},
	}
}

func getMemoSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"memo_id": {
				Type:        "string",
				Description: "ID of the memo to fetch",
			},
		},
		Required: []string{"memo_id"},
	}
}

func updateMemoSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"memo_id": {
				Type:        "string",
				Description: "ID of the memo to update",
			},
			"content": {
				Type:        "string",
				Description: "New memo content",
			},
			"tags": {
				Type:        "array",
				Description: "New tag list, replacing the current one",
				Items:       &jsonschema.Schema{Type: "string"},
			},
			"importance": {
				Type:        "integer",
				Description: "New importance from 1 to 5; out-of-range values are clamped",
			},
			"emotion": {
				Type:        "string",
				Description: "New emotion",
			},
			"context": {
				Type:        "string",
				Description: "New context",
			},
			"related_to": {
				Type:        "array",
				Description: "New list of related memo IDs, replacing the current one",
				Items:       &jsonschema.Schema{Type: "string"},
			},
		},
		Required: []string{"memo_id"},
	}
}

func deleteMemoSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"memo_id": {
				Type:        "string",
				Description: "ID of the memo to delete",
			},
		},
		Required: []string{"memo_id"},
	}
}

func searchMemosSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "Text to look for in content, tags, context and emotion",
			},
			"limit": {
				Type:        "integer",
				Description: "Maximum number of memos to return, 10 when omitted",
			},
		},
		Required: []string{"query"},
	}
}

func memoStatsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
	}
}
