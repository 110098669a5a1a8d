// tetris is a falling-block game for the terminal.
//
// Usage:
//
//	tetris play      - Play in the terminal
//	tetris demo      - Run a headless game with a random autoplayer
//	tetris shapes    - Show every piece in all rotations
//	tetris config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Frames per second (default: from config)
//	--seed <value>        - RNG seed for reproducible piece order
//	--config <path>       - Path to a config YAML
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - the classic falling-block game in your terminal",
	Long: `Tetris drops one of seven pieces into a 10x24 well. Fill a row to clear it.
The game ends when a piece cannot fall while it is still in the top four rows.

Available commands:
  play     - Play in the terminal
  demo     - Watch a random autoplayer in the log
  shapes   - Show the piece table
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play --seed 42
  tetris demo --duration 10s --restart
  tetris config > ~/.tetris/config.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = timing.frame_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}
