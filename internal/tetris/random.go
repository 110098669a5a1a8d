package tetris

import "math/rand"

// Source supplies the piece draws. Intn must return a value in [0, n).
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSeededSource returns a deterministic Source for the given seed.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
