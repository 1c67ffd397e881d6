package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/lexdraft/lexdraft/internal/draft"
	"github.com/lexdraft/lexdraft/internal/override"
)

// PendingRewrite is an AI rewrite in flight, pinned to the exact text
// it was computed against.
//
// The snapshot makes the §stale check a first-class value comparison:
// a result may only be accepted while the section still shows the text
// the rewrite started from. Discarding a PendingRewrite cancels it -
// there are no side effects until Accept.
type PendingRewrite struct {
	SectionID    draft.SectionID
	SnapshotText string // the section's display text when the rewrite was requested
	Instruction  string
	Result       string
}

// Coordinator runs the rewrite flow against an override store.
type Coordinator struct {
	rewriter Rewriter
	store    *override.Store
	logger   *slog.Logger
}

// NewCoordinator wires a rewriter to a session's override store.
// A nil logger falls back to slog.Default.
func NewCoordinator(rewriter Rewriter, store *override.Store, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{rewriter: rewriter, store: store, logger: logger}
}

// RequestRewrite calls the collaborator and returns the pending result.
// currentText must be the section's display text as the user sees it
// right now; it becomes the snapshot the acceptance check compares
// against. A collaborator failure leaves all state unchanged.
func (c *Coordinator) RequestRewrite(ctx context.Context, sectionID draft.SectionID, currentText, instruction string, reqCtx RewriteContext) (PendingRewrite, error) {
	result, err := c.rewriter.Rewrite(ctx, RewriteRequest{
		OriginalText: currentText,
		Instruction:  instruction,
		Context:      reqCtx,
	})
	if err != nil {
		return PendingRewrite{}, err
	}
	return PendingRewrite{
		SectionID:    sectionID,
		SnapshotText: currentText,
		Instruction:  instruction,
		Result:       result,
	}, nil
}

// Accept applies a pending rewrite as an AI override.
//
// currentText must be the section's display text at acceptance time
// (override text when one is active, the assembled default otherwise).
// When it no longer matches the snapshot the user has edited or
// restored the section since the rewrite started; the result is
// silently dropped - it reflects superseded intent, not an error - and
// the drop is logged for diagnosability.
func (c *Coordinator) Accept(p PendingRewrite, currentText string, now time.Time) bool {
	if currentText != p.SnapshotText {
		c.logger.Info("dropping stale rewrite result",
			"section_id", string(p.SectionID),
			"instruction", p.Instruction)
		return false
	}
	c.store.Set(draft.TextOverride{
		SectionID:    p.SectionID,
		OriginalText: p.SnapshotText,
		NewText:      p.Result,
		AIGenerated:  true,
		Instruction:  p.Instruction,
		Timestamp:    now,
	})
	return true
}
