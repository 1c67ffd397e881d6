package ai

import (
	"context"
	"fmt"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// StaticRewriter is a deterministic Rewriter for tests and offline use.
// It applies Transform when set, otherwise tags the original text with
// the instruction.
type StaticRewriter struct {
	Transform func(req RewriteRequest) string
	Err       error
}

// Rewrite implements Rewriter.
func (r *StaticRewriter) Rewrite(_ context.Context, req RewriteRequest) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	if r.Transform != nil {
		return r.Transform(req), nil
	}
	return fmt.Sprintf("[%s] %s", req.Instruction, req.OriginalText), nil
}

// StaticGenerator is a deterministic Generator for tests and offline use.
type StaticGenerator struct {
	Content *draft.GeneratedContent
	Blocks  map[string]string
	Err     error
}

// GenerateContent implements Generator.
func (g *StaticGenerator) GenerateContent(_ context.Context, _ string) (*draft.GeneratedContent, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Content, nil
}

// GenerateBlocks implements Generator.
func (g *StaticGenerator) GenerateBlocks(_ context.Context, _ string, blockIDs []string) (map[string]string, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	out := make(map[string]string, len(blockIDs))
	for _, id := range blockIDs {
		if text, ok := g.Blocks[id]; ok {
			out[id] = text
		}
	}
	return out, nil
}
