package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show every piece in all four rotations",
	Long: `Decode the piece table and print each kind in rotations 0 to 3,
using the configured block characters and palette.`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

func runShapes(_ *cobra.Command, _ []string) {
	cfg, _ := loadConfig()

	shapes, err := tetris.BuildShapeTable(tetris.ClassicEncodings)
	if err != nil {
		fail("%v", err)
	}
	colors, err := cfg.Display.Colors()
	if err != nil {
		fail("%v", err)
	}

	fmt.Println(tui.RenderShapes(shapes, cfg.Display.Block, colors))
}
