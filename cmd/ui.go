package cmd

import (
	appui "PrimitiveBoard/internal/ui"

	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui [drawing.json]",
	Short: "Launch the interactive board",
	Long: `Open the drawing window. Pick a shape, then press, drag and release on
the board; triangles take three clicks. Ctrl+Z undoes and Ctrl+Y redoes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	open := ""
	if len(args) == 1 {
		open = args[0]
	}
	appui.RunApp(cfg, open)
	return nil
}
