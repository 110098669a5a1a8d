// Package storage keeps the scores of finished runs for the lifetime of the
// process. Nothing is written to disk.
package storage

import (
	"sort"
	"sync"
	"time"
)

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	Score     int
	Lines     int
	Duration  time.Duration
	CreatedAt time.Time // When the run ended
}

// History is an in-memory scoreboard. It is safe for concurrent use.
type History struct {
	mu      sync.Mutex
	entries []ScoreEntry
	nextID  int64
	now     func() time.Time
}

// NewHistory creates an empty scoreboard.
func NewHistory() *History {
	return &History{now: time.Now}
}

// SaveScore records a finished run and returns its ID.
func (h *History) SaveScore(score, lines int, duration time.Duration) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	h.entries = append(h.entries, ScoreEntry{
		ID:        h.nextID,
		Score:     score,
		Lines:     lines,
		Duration:  duration,
		CreatedAt: h.now(),
	})
	return h.nextID
}

// TopScores returns up to limit runs ordered by score descending.
// Ties keep the earlier run first. A limit <= 0 means 10.
func (h *History) TopScores(limit int) []ScoreEntry {
	if limit <= 0 {
		limit = 10
	}

	h.mu.Lock()
	entries := make([]ScoreEntry, len(h.entries))
	copy(entries, h.entries)
	h.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// BestScore returns the highest recorded score, or 0 when empty.
func (h *History) BestScore() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	best := 0
	for _, e := range h.entries {
		best = max(best, e.Score)
	}
	return best
}

// Count returns the number of recorded runs.
func (h *History) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
