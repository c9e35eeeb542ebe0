package cmd

import (
	"fmt"

	"PrimitiveBoard/internal/codec"
	"PrimitiveBoard/internal/export"

	"github.com/spf13/cobra"
)

var pdfFit bool

var pdfCmd = &cobra.Command{
	Use:   "pdf <drawing> <output.pdf>",
	Short: "Export a drawing as a one page PDF",
	Long: `Export a saved drawing as vector PDF. One board pixel is a third of a
millimetre on the page.

Examples:
  primitiveboard pdf drawing.json drawing.pdf
  primitiveboard pdf --viewport --fit drawing.json drawing.pdf`,
	Args: cobra.ExactArgs(2),
	RunE: runPDF,
}

func init() {
	rootCmd.AddCommand(pdfCmd)
	pdfCmd.Flags().BoolVar(&pdfFit, "fit", false, "size the page to the drawing instead of the configured board")
}

func runPDF(cmd *cobra.Command, args []string) error {
	prims, _, err := codec.ReadFile(args[0])
	if err != nil {
		return err
	}
	if err := export.PDFFile(args[1], prims, canvasFor(prims, pdfFit), renderOptions()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d figures to %s\n", len(prims), args[1])
	return nil
}
