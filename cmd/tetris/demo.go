package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagDuration      time.Duration
	flagInterval      time.Duration
	flagInputInterval time.Duration
	flagRestart       bool
)

// errDemoOver stops the demo when the game ends and restarts are off.
var errDemoOver = errors.New("game over")

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a headless game with a random autoplayer",
	Long: `Run the engine without a terminal UI. One goroutine drives gravity on a
timer while another sends random moves, rotations and drops. Events are
logged to stderr (or --log-file) and the final well is printed at the end.

Examples:
  tetris demo
  tetris demo --duration 1m --restart
  tetris demo --interval 20ms --input-interval 5ms --seed 7`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().DurationVar(&flagDuration, "duration", 30*time.Second, "How long to run")
	demoCmd.Flags().DurationVar(&flagInterval, "interval", 0, "Gravity interval (0 = timing.tick_interval_ms from config)")
	demoCmd.Flags().DurationVar(&flagInputInterval, "input-interval", 50*time.Millisecond, "Time between autoplayer inputs")
	demoCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new game after game over")
}

// demoStats is written by the gravity goroutine and read after it exits.
type demoStats struct {
	ticks  int
	locks  int
	lines  int
	games  int
	best   int
	logger *log.Logger
}

func (s *demoStats) onTick(res tetris.TickResult, snap func() tetris.Snapshot) {
	s.ticks++
	if res.Locked {
		s.locks++
	}
	if res.Cleared > 0 {
		s.lines += res.Cleared
		s.logger.Info("lines cleared", "count", res.Cleared)
	}
	if res.Over {
		cur := snap()
		s.games++
		s.best = max(s.best, cur.Score)
		s.logger.Info("game over", "score", cur.Score, "lines", cur.Lines, "locks", s.locks)
	}
}

func runDemo(cmd *cobra.Command, _ []string) {
	cfg, source := loadConfig()

	logger, closer, err := newLogger("tetris-demo", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	interval := flagInterval
	if interval <= 0 {
		interval = cfg.Timing.TickInterval()
	}
	if flagInputInterval <= 0 {
		fail("--input-interval must be positive")
	}

	seed := resolveSeed()
	engine, err := tetris.New(tetris.NewSeededSource(seed))
	if err != nil {
		fail("%v", err)
	}
	locked := tetris.NewLocked(engine)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagDuration)
	defer cancel()

	logger.Info("demo started", "config", source, "seed", seed, "interval", interval, "duration", flagDuration)
	locked.Start()

	stats := &demoStats{logger: logger}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return tetris.Drive(ctx, locked, interval, func(res tetris.TickResult) {
			stats.onTick(res, locked.Snapshot)
		})
	})
	g.Go(func() error {
		return autoplay(ctx, locked, rand.New(rand.NewSource(seed+1)), flagInputInterval, flagRestart, logger)
	})

	err = g.Wait()
	switch {
	case err == nil, errors.Is(err, errDemoOver),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	default:
		logger.Error("demo failed", "error", err)
		closer.Close()
		fail("%v", err)
	}

	final := locked.Snapshot()
	if !final.Over() {
		stats.best = max(stats.best, final.Score)
	}
	logger.Info("demo finished",
		"ticks", stats.ticks, "locks", stats.locks, "lines", stats.lines,
		"games_over", stats.games, "best", stats.best)

	fmt.Println(renderWell(final, cfg.Display))
}

// autoplay sends a random command every interval. When the game is over it
// restarts it, or stops the demo when restart is false.
func autoplay(ctx context.Context, l *tetris.Locked, rng *rand.Rand, interval time.Duration, restart bool, logger *log.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if l.Over() {
			if !restart {
				return errDemoOver
			}
			l.Start()
			logger.Info("game restarted")
			continue
		}

		switch n := rng.Intn(10); {
		case n < 3:
			l.Move(-1)
		case n < 6:
			l.Move(1)
		case n < 9:
			l.Rotate()
		default:
			rows := l.HardDrop()
			logger.Debug("hard drop", "rows", rows)
		}
	}
}

// renderWell draws the visible part of the board and the score as text.
func renderWell(snap tetris.Snapshot, display config.DisplayConfig) string {
	colors, err := display.Colors()
	if err != nil {
		colors = [config.PaletteSize]core.Color{}
	}

	visible := tetris.Rows - display.HiddenRows
	width := tetris.Cols*2 + 2
	screen := core.NewScreen(width, visible+2)

	screen.DrawBox(core.NewRect(0, 0, width, visible+2))
	for row := display.HiddenRows; row < tetris.Rows; row++ {
		y := 1 + row - display.HiddenRows
		for col := range tetris.Cols {
			x := 1 + col*2
			if c := snap.Grid[row][col]; c != tetris.Empty {
				screen.DrawTextColored(x, y, display.Block, colors[int(c)-1])
			} else {
				screen.DrawTextColored(x, y, display.Empty, core.ColorGray)
			}
		}
	}

	return tui.RenderScreen(screen) +
		fmt.Sprintf("\nScore: %d  Lines: %d  (%s)", snap.Score, snap.Lines, snap.State)
}
