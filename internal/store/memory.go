// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// This is the default history when no database is configured.
//
// Characteristics:
//   - Stores game.Record values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/robalobadob/guessing-game/internal/game"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards rounds
	rounds map[string]game.Record // keyed by Record.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]game.Record)}
}

// Save adds or replaces the record.
func (m *memory) Save(ctx context.Context, r *game.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = *r
	return nil
}

// Get looks up a record by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return &r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Recent(ctx context.Context, limit int) ([]game.Record, error) {
	all := m.snapshot()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].StartedAt.After(all[j].StartedAt)
	})
	return clip(all, normalizeLimit(limit)), nil
}

func (m *memory) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	var total int
	for _, r := range m.snapshot() {
		s.Rounds++
		if r.Outcome != game.OutcomeWon {
			s.Quit++
			continue
		}
		s.Won++
		total += r.Attempts
		if s.BestAttempts == 0 || r.Attempts < s.BestAttempts {
			s.BestAttempts = r.Attempts
		}
	}
	if s.Won > 0 {
		s.AvgAttempts = float64(total) / float64(s.Won)
	}
	return s, nil
}

func (m *memory) Leaderboard(ctx context.Context, date string, limit int) ([]game.Record, error) {
	out := []game.Record{}
	for _, r := range m.snapshot() {
		if r.Outcome == game.OutcomeWon && DateKey(r.StartedAt) == date {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Attempts != b.Attempts {
			return a.Attempts < b.Attempts
		}
		if a.Duration() != b.Duration() {
			return a.Duration() < b.Duration()
		}
		return a.StartedAt.Before(b.StartedAt)
	})
	return clip(out, normalizeLimit(limit)), nil
}

func (m *memory) Close() error { return nil }

func (m *memory) snapshot() []game.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]game.Record, 0, len(m.rounds))
	for _, r := range m.rounds {
		out = append(out, r)
	}
	return out
}

func clip(rs []game.Record, n int) []game.Record {
	if len(rs) > n {
		return rs[:n]
	}
	return rs
}
