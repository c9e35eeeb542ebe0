package cmd

import (
	"fmt"

	"PrimitiveBoard/internal/codec"
	"PrimitiveBoard/internal/state"

	"github.com/spf13/cobra"
)

var infoVerbose bool

var infoCmd = &cobra.Command{
	Use:   "info <drawing>",
	Short: "Show what a drawing contains",
	Long: `Print the format, the number of figures per kind and the bounding box
of a saved drawing.

Examples:
  primitiveboard info drawing.json
  primitiveboard info --list drawing.json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVarP(&infoVerbose, "list", "l", false, "list every figure")
}

func runInfo(cmd *cobra.Command, args []string) error {
	prims, format, err := codec.ReadFile(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "File:    %s\n", args[0])
	fmt.Fprintf(out, "Format:  %s\n", format)
	fmt.Fprintf(out, "Figures: %d\n", len(prims))

	counts := make(map[state.Kind]int)
	for _, p := range prims {
		counts[p.Kind()]++
	}
	for _, k := range state.Kinds {
		if counts[k] > 0 {
			fmt.Fprintf(out, "  %-10s %d\n", k, counts[k])
		}
	}

	if b, ok := state.DocumentBounds(prims); ok {
		fmt.Fprintf(out, "Bounds:  (%.1f, %.1f) - (%.1f, %.1f), %.1f x %.1f\n",
			b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, b.Width(), b.Height())
	}

	if infoVerbose {
		for i, p := range prims {
			fmt.Fprintf(out, "%4d  %-10s rgb(%d,%d,%d) width %d  %s\n",
				i, p.Kind(), p.Color.R, p.Color.G, p.Color.B, p.Width, describe(p.Shape))
		}
	}
	return nil
}

func describe(sh state.Shape) string {
	switch sh.Kind {
	case state.KindPoint:
		return fmt.Sprintf("(%g, %g)", sh.Point.X, sh.Point.Y)
	case state.KindLine:
		s := sh.Segment
		return fmt.Sprintf("(%g, %g) - (%g, %g)", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
	case state.KindCircle:
		c := sh.Circle
		return fmt.Sprintf("center (%g, %g) radius %g", c.Center.X, c.Center.Y, c.Radius)
	case state.KindRectangle:
		r := sh.Rectangle
		return fmt.Sprintf("(%g, %g) - (%g, %g)", r.P1.X, r.P1.Y, r.P2.X, r.P2.Y)
	case state.KindTriangle:
		t := sh.Triangle
		return fmt.Sprintf("(%g, %g) (%g, %g) (%g, %g)", t.P1.X, t.P1.Y, t.P2.X, t.P2.Y, t.P3.X, t.P3.Y)
	}
	return ""
}
