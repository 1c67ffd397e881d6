package override

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexdraft/lexdraft/internal/draft"
)

func at(minute int) time.Time {
	return time.Date(2026, 1, 15, 10, minute, 0, 0, time.UTC)
}

func TestSetAndGet(t *testing.T) {
	s := NewStore()
	s.Set(draft.TextOverride{
		SectionID:    draft.SectionBackground,
		OriginalText: "default background",
		NewText:      "edited background",
		Timestamp:    at(0),
	})

	ov, ok := s.Get(draft.SectionBackground)
	require.True(t, ok)
	assert.Equal(t, "edited background", ov.NewText)
	assert.Equal(t, "default background", ov.OriginalText)
	assert.Equal(t, 1, s.Count())
}

// Override T0 -> T1, then T1 -> T2: restore must yield T0, never T1.
func TestReplaceDoesNotChainOriginals(t *testing.T) {
	s := NewStore()
	s.Set(draft.TextOverride{SectionID: draft.SectionBackground, OriginalText: "T0", NewText: "T1", Timestamp: at(0)})
	s.Set(draft.TextOverride{SectionID: draft.SectionBackground, OriginalText: "T1", NewText: "T2", Timestamp: at(1)})

	ov, ok := s.Get(draft.SectionBackground)
	require.True(t, ok)
	assert.Equal(t, "T2", ov.NewText)
	assert.Equal(t, "T0", ov.OriginalText, "original must not drift to T1")
	assert.Equal(t, 1, s.Count(), "replacement, not accumulation")

	removed, ok := s.Restore(draft.SectionBackground)
	require.True(t, ok)
	assert.Equal(t, "T0", removed.OriginalText)
}

func TestRestoreIdempotent(t *testing.T) {
	s := NewStore()
	s.Set(draft.TextOverride{SectionID: draft.SectionBackground, OriginalText: "T0", NewText: "T1", Timestamp: at(0)})

	_, ok := s.Restore(draft.SectionBackground)
	assert.True(t, ok)
	_, ok = s.Restore(draft.SectionBackground)
	assert.False(t, ok, "second restore is a no-op")

	_, ok = s.Get(draft.SectionBackground)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Count())
}

func TestRestoreUnknownSectionIsNoop(t *testing.T) {
	s := NewStore()
	_, ok := s.Restore(draft.SectionClosing)
	assert.False(t, ok)
}

func TestSetUnrelatedSectionsDoNotInterfere(t *testing.T) {
	s := NewStore()
	s.Set(draft.TextOverride{SectionID: draft.SectionBackground, OriginalText: "bg", NewText: "bg2", Timestamp: at(0)})
	s.Set(draft.TextOverride{SectionID: draft.ServiceSection("a"), OriginalText: "svc", NewText: "svc2", Timestamp: at(1)})

	s.Restore(draft.SectionBackground)

	ov, ok := s.Get(draft.ServiceSection("a"))
	require.True(t, ok)
	assert.Equal(t, "svc2", ov.NewText)
	assert.Equal(t, "svc", ov.OriginalText)
}

func TestListOrderedByTimestampDesc(t *testing.T) {
	s := NewStore()
	s.Set(draft.TextOverride{SectionID: draft.SectionBackground, NewText: "oldest", Timestamp: at(0)})
	s.Set(draft.TextOverride{SectionID: draft.SectionClosing, NewText: "newest", Timestamp: at(2)})
	s.Set(draft.TextOverride{SectionID: draft.ServiceSection("a"), NewText: "middle", Timestamp: at(1)})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "newest", list[0].NewText)
	assert.Equal(t, "middle", list[1].NewText)
	assert.Equal(t, "oldest", list[2].NewText)
}

func TestListEqualTimestampsOrderByInsertionDesc(t *testing.T) {
	s := NewStore()
	s.Set(draft.TextOverride{SectionID: draft.SectionBackground, NewText: "first", Timestamp: at(0)})
	s.Set(draft.TextOverride{SectionID: draft.SectionClosing, NewText: "second", Timestamp: at(0)})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].NewText)
	assert.Equal(t, "first", list[1].NewText)
}
