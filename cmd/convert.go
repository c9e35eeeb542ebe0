package cmd

import (
	"fmt"

	"PrimitiveBoard/internal/codec"

	"github.com/spf13/cobra"
)

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a drawing between JSON and the legacy line format",
	Long: `Read a drawing in either format (detected from its content) and write
it in the format given by --to.

Examples:
  primitiveboard convert old.txt drawing.json
  primitiveboard convert --to legacy drawing.json old.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertTo, "to", "json", "output format (json, legacy)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	to, err := codec.ParseFormat(convertTo)
	if err != nil {
		return err
	}
	prims, from, err := codec.ReadFile(args[0])
	if err != nil {
		return err
	}
	if err := codec.WriteFile(args[1], prims, to); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Converted %d figures (%s -> %s)\n", len(prims), from, to)
	return nil
}
