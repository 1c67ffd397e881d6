package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// ErrNotFound reports a missing snapshot.
var ErrNotFound = errors.New("store: not found")

// LogEntry is one row of the override audit log.
type LogEntry struct {
	Seq          int64           `json:"seq"`
	DraftToken   string          `json:"draft_token"`
	SectionID    draft.SectionID `json:"section_id"`
	Op           string          `json:"op"` // "set" or "restore"
	OriginalText string          `json:"original_text,omitempty"`
	NewText      string          `json:"new_text,omitempty"`
	AIGenerated  bool            `json:"ai_generated,omitempty"`
	Instruction  string          `json:"instruction,omitempty"`
	At           time.Time       `json:"at"`
}

// ListOverrideLog returns a draft's audit log in append order.
// Ordering is by seq: deterministic regardless of timestamp skew.
func (s *Store) ListOverrideLog(ctx context.Context, draftToken string) ([]LogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, draft_token, section_id, op, original_text, new_text, ai_generated, instruction, at
		FROM override_log
		WHERE draft_token = ?
		ORDER BY seq ASC
	`, draftToken)
	if err != nil {
		return nil, fmt.Errorf("list override log: %w", err)
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		var sectionID, at string
		if err := rows.Scan(&e.Seq, &e.DraftToken, &sectionID, &e.Op,
			&e.OriginalText, &e.NewText, &e.AIGenerated, &e.Instruction, &at); err != nil {
			return nil, fmt.Errorf("scan override log: %w", err)
		}
		e.SectionID = draft.SectionID(sectionID)
		if e.At, err = time.Parse(timeFormat, at); err != nil {
			return nil, fmt.Errorf("parse log timestamp %q: %w", at, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list override log: %w", err)
	}
	return entries, nil
}

// ReadSnapshot loads a snapshot by fingerprint id.
func (s *Store) ReadSnapshot(ctx context.Context, id string) (Snapshot, error) {
	var snap Snapshot
	var pricingJSON, selectionsJSON, overridesJSON, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, draft_token, pricing_config, selections, overrides, markup, created_at
		FROM snapshots WHERE id = ?
	`, id).Scan(&snap.ID, &snap.DraftToken, &pricingJSON, &selectionsJSON, &overridesJSON, &snap.Markup, &createdAt)
	if err == sql.ErrNoRows {
		return Snapshot{}, fmt.Errorf("read snapshot %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	if err := unmarshalJSON(pricingJSON, &snap.Pricing); err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot pricing: %w", err)
	}
	if err := unmarshalJSON(selectionsJSON, &snap.Selections); err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot selections: %w", err)
	}
	if err := unmarshalJSON(overridesJSON, &snap.Overrides); err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot overrides: %w", err)
	}
	if snap.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot timestamp %q: %w", createdAt, err)
	}
	return snap, nil
}
