package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"PrimitiveBoard/internal/config"
	"PrimitiveBoard/internal/logging"
	"PrimitiveBoard/internal/state"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags
	cfgFile  string
	verbose  bool
	circleAl string
	lineAl   string
	withView bool

	// Filled in by the root PersistentPreRunE.
	v   *viper.Viper
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "primitiveboard [drawing.json]",
	Short: "Primitive Board - draw points, lines, circles, rectangles and triangles",
	Long: `Primitive Board is a small vector drawing board. Without a subcommand
it opens the interactive window.

Examples:
  primitiveboard                              # Open an empty board
  primitiveboard drawing.json                 # Open a saved drawing
  primitiveboard render drawing.json out.png  # Rasterize a drawing
  primitiveboard pdf drawing.json out.pdf     # Export a drawing as PDF
  primitiveboard raster circle --r 5          # Print midpoint circle pixels`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: setup,
	RunE:              runUI,
	SilenceUsage:      true,
	Version:           "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Fyne cannot parse LANG=C
	if lang := os.Getenv("LANG"); lang == "" || lang == "C" {
		os.Setenv("LANG", "en_US.UTF-8")
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (yaml, toml or json)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&circleAl, "circle", "", "circle algorithm (native, parametric, midpoint)")
	pf.StringVar(&lineAl, "line", "", "line algorithm (native, equation, midpoint)")
	pf.BoolVar(&withView, "viewport", false, "also draw everything mapped into the viewport")
}

// setup loads configuration and installs the logger before any command
// runs.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	if v, err = config.New(cfgFile); err != nil {
		return err
	}

	pf := cmd.Flags()
	for key, name := range map[string]string{
		config.CfgRenderCircle: "circle",
		config.CfgRenderLine:   "line",
		config.CfgViewportOn:   "viewport",
	} {
		if f := pf.Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}
	if verbose {
		v.Set(config.CfgLogLevel, "debug")
	}

	if cfg, err = config.Load(v); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logging.ParseLevel(cfg.LogLevel)})
	logging.SetLogger(slog.New(h).With("session", state.SessionID()))
	logging.For("cmd").Debug("config loaded", "file", v.ConfigFileUsed(), "kind", cfg.Kind)
	return nil
}
