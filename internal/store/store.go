// internal/store/store.go
//
// Round history persistence.
// Implementations:
//   - memory (this package, memory.go): default, process lifetime only.
//   - SQLite (sqlite.go): durable history shared with the guess-stats service.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/guessing-game/internal/game"
)

// ErrNotFound is returned by Get for unknown round IDs.
var ErrNotFound = errors.New("not found")

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Store defines the persistence interface for finished rounds.
type Store interface {
	// Save persists or replaces a round record.
	Save(ctx context.Context, r *game.Record) error

	// Get retrieves a record by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Record, error)

	// Recent lists records newest first.
	Recent(ctx context.Context, limit int) ([]game.Record, error)

	// Summary aggregates every stored round.
	Summary(ctx context.Context) (Summary, error)

	// Leaderboard lists won rounds started on date (YYYY-MM-DD, UTC),
	// fewest attempts first, then fastest, then earliest.
	Leaderboard(ctx context.Context, date string, limit int) ([]game.Record, error)

	Close() error
}

// Summary holds aggregate counters over the history.
type Summary struct {
	Rounds       int     `json:"rounds"`
	Won          int     `json:"won"`
	Quit         int     `json:"quit"`
	BestAttempts int     `json:"bestAttempts"` // 0 when nothing was won
	AvgAttempts  float64 `json:"avgAttempts"`  // over won rounds
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// normalizeLimit maps non-positive limits to DefaultLimit and caps at MaxLimit.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
