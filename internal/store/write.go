package store

import (
	"context"
	"fmt"
	"time"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// timeFormat stores timestamps as RFC 3339 UTC text, which sorts
// lexicographically. Ordering queries still use seq, never timestamps.
const timeFormat = time.RFC3339Nano

// AppendOverrideSet records an override being set (or replaced) on the
// audit log. The log is append-only: replacements append a new row
// rather than updating the old one.
func (s *Store) AppendOverrideSet(ctx context.Context, draftToken string, ov draft.TextOverride) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO override_log
		(draft_token, section_id, op, original_text, new_text, ai_generated, instruction, at)
		VALUES (?, ?, 'set', ?, ?, ?, ?, ?)
	`,
		draftToken,
		string(ov.SectionID),
		ov.OriginalText,
		ov.NewText,
		ov.AIGenerated,
		ov.Instruction,
		ov.Timestamp.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("append override set: %w", err)
	}
	return nil
}

// AppendOverrideRestore records an override being restored to the
// original text.
func (s *Store) AppendOverrideRestore(ctx context.Context, draftToken string, sectionID draft.SectionID, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO override_log (draft_token, section_id, op, at)
		VALUES (?, ?, 'restore', ?)
	`,
		draftToken,
		string(sectionID),
		at.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("append override restore: %w", err)
	}
	return nil
}

// WriteSnapshot persists a draft snapshot. Uses ON CONFLICT(id) DO
// NOTHING for idempotency: the id is the content fingerprint, so a
// duplicate write carries byte-identical content by construction.
func (s *Store) WriteSnapshot(ctx context.Context, snap Snapshot) error {
	pricingJSON, err := marshalJSON(snap.Pricing)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	selectionsJSON, err := marshalJSON(snap.Selections)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	overridesJSON, err := marshalJSON(snap.Overrides)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots
		(id, draft_token, pricing_config, selections, overrides, markup, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		snap.ID,
		snap.DraftToken,
		pricingJSON,
		selectionsJSON,
		overridesJSON,
		snap.Markup,
		snap.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
