// Package ai defines the boundary to the text-generation collaborators.
//
// The collaborators are opaque: text and an instruction go in, text
// comes out. The core never retries and defines no implicit timeout -
// both are caller decisions, made through the context. Nothing in this
// package touches core state until a result is explicitly accepted,
// and acceptance of a stale result is a logged no-op.
package ai

import (
	"context"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// RewriteContext carries the client facts a rewrite may lean on.
type RewriteContext struct {
	ClientName string `json:"client_name"`
	Industry   string `json:"industry,omitempty"`
}

// RewriteRequest asks for a rewrite of one section's current text.
type RewriteRequest struct {
	OriginalText string         `json:"original_text"`
	Instruction  string         `json:"instruction"`
	Context      RewriteContext `json:"context"`
}

// Rewriter is the AI rewrite collaborator. Failures propagate as plain
// errors; prior document state is unchanged and the caller may retry.
type Rewriter interface {
	Rewrite(ctx context.Context, req RewriteRequest) (string, error)
}

// GenerateMode selects how proposal content is generated.
type GenerateMode string

const (
	// ModeTemplate returns per-block text keyed by block id.
	ModeTemplate GenerateMode = "template"
	// ModeFreeform returns the structured GeneratedContent shape.
	ModeFreeform GenerateMode = "freeform"
)

// Generator is the AI content-generation collaborator.
type Generator interface {
	// GenerateContent produces freeform structured content for a case.
	GenerateContent(ctx context.Context, caseID string) (*draft.GeneratedContent, error)
	// GenerateBlocks produces template-mode text keyed by block id.
	GenerateBlocks(ctx context.Context, caseID string, blockIDs []string) (map[string]string, error)
}
