package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// Snapshot is an opaque persisted view of a draft: everything the
// persistence collaborator consumes, round-trippable through the codec.
type Snapshot struct {
	ID         string                   `json:"id"` // draft fingerprint
	DraftToken string                   `json:"draft_token"`
	Pricing    draft.PricingConfig      `json:"pricing_config"`
	Selections []draft.ServiceSelection `json:"selections"`
	Overrides  []draft.TextOverride     `json:"overrides"`
	Markup     string                   `json:"markup"`
	CreatedAt  time.Time                `json:"created_at"`
}

// marshalJSON serializes a value to JSON TEXT for storage with HTML
// escaping disabled, so stored markup fragments stay readable when
// inspecting the database directly.
func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	// Encoder appends a trailing newline; strip it.
	return strings.TrimRight(buf.String(), "\n"), nil
}

func unmarshalJSON(data string, v any) error {
	return json.Unmarshal([]byte(data), v)
}
