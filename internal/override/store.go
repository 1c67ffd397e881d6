// Package override tracks substitutions of generated section text.
//
// The store enforces at-most-one active override per section. Repeated
// edits replace the active override but never lose the true original:
// restore always returns to the pre-any-edit text, no matter how many
// times a section was rewritten in between.
package override

import (
	"sort"
	"sync"

	"github.com/lexdraft/lexdraft/internal/draft"
)

// Store holds the active overrides for one editing session.
//
// Thread-safety: all methods are safe for concurrent use via an
// internal mutex. The editing model is single-writer, but AI rewrite
// acceptances arrive from other goroutines.
type Store struct {
	mu      sync.Mutex
	entries map[draft.SectionID]entry
	seq     int64
}

// entry pairs an override with its insertion sequence. The sequence
// breaks listing ties deterministically when timestamps collide.
type entry struct {
	ov  draft.TextOverride
	seq int64
}

// NewStore creates an empty override store.
func NewStore() *Store {
	return &Store{entries: make(map[draft.SectionID]entry)}
}

// Set upserts an override by section id.
//
// INVARIANT: when an override already exists for the section, the new
// override's OriginalText is forced to the EXISTING override's
// OriginalText - not whatever text the caller saw. This prevents the
// "original" from drifting across repeated edits.
func (s *Store) Set(ov draft.TextOverride) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prior, ok := s.entries[ov.SectionID]; ok {
		ov.OriginalText = prior.ov.OriginalText
	}
	s.seq++
	s.entries[ov.SectionID] = entry{ov: ov, seq: s.seq}
}

// Get returns the active override for a section, if any.
func (s *Store) Get(sectionID draft.SectionID) (draft.TextOverride, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sectionID]
	return e.ov, ok
}

// Restore removes the override for a section, returning the removed
// override. Restoring a section with no override is a no-op, not an
// error: restore followed by restore observes the same state as one
// restore.
func (s *Store) Restore(sectionID draft.SectionID) (draft.TextOverride, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sectionID]
	if !ok {
		return draft.TextOverride{}, false
	}
	delete(s.entries, sectionID)
	return e.ov, true
}

// List returns the active overrides ordered by timestamp descending.
// Equal timestamps order by insertion sequence descending, so the
// listing is deterministic.
func (s *Store) List() []draft.TextOverride {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		ti, tj := entries[i].ov.Timestamp, entries[j].ov.Timestamp
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return entries[i].seq > entries[j].seq
	})

	out := make([]draft.TextOverride, len(entries))
	for i, e := range entries {
		out[i] = e.ov
	}
	return out
}

// Count returns the number of active overrides.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
