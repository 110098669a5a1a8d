package tetris

import (
	"context"
	"sync"
	"time"
)

// Locked serializes access to an Engine shared between goroutines, such as a
// gravity timer and an input source. Every command and read holds the same
// mutex, so readers never observe a half-applied tick.
type Locked struct {
	mu     sync.Mutex
	engine *Engine
}

// NewLocked wraps e. The caller must not use e directly afterwards.
func NewLocked(e *Engine) *Locked {
	return &Locked{engine: e}
}

// Start starts or restarts the game.
func (l *Locked) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.engine.Start()
}

// Move shifts the piece horizontally.
func (l *Locked) Move(dir int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Move(dir)
}

// Rotate turns the piece.
func (l *Locked) Rotate() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Rotate()
}

// HardDrop drops the piece.
func (l *Locked) HardDrop() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.HardDrop()
}

// Tick runs one gravity step.
func (l *Locked) Tick() TickResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Tick()
}

// Over reports whether the game is not running.
func (l *Locked) Over() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Over()
}

// Snapshot reads the full state.
func (l *Locked) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Snapshot()
}

// Drive is the gravity timer: it calls Tick every interval while the game is
// running and skips intervals while it is over, so a later Start resumes
// play. onTick, if set, receives each result outside the lock.
// Drive returns the context error once ctx is done.
func Drive(ctx context.Context, l *Locked, interval time.Duration, onTick func(TickResult)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		// A tick and cancellation can be ready together; cancellation wins.
		if err := ctx.Err(); err != nil {
			return err
		}

		l.mu.Lock()
		if l.engine.Over() {
			l.mu.Unlock()
			continue
		}
		res := l.engine.Tick()
		l.mu.Unlock()

		if onTick != nil {
			onTick(res)
		}
	}
}
