package main

import (
	"fmt"
	"os"

	"github.com/kestrel3d/kestrel/internal/demo"
	"github.com/spf13/cobra"
)

var cfg = demo.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "kestrel",
	Short: "Orbit camera rendering demo",
	Long: `Kestrel opens a window with a reference grid, world axes, a rotating lit
cube, and an interactive clipping plane, viewed through an orbiting camera.

Drag with the left mouse button to orbit, the right button to pan, and
scroll to zoom. Press C to toggle the clipping plane and Esc to quit.`,
	Version:      "1.0.0",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demo.Run(cfg)
	},
}

func init() {
	rootCmd.Flags().IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	rootCmd.Flags().IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	rootCmd.Flags().StringVar(&cfg.Title, "title", cfg.Title, "window title")
	rootCmd.Flags().BoolVar(&cfg.VSync, "vsync", cfg.VSync, "synchronize presentation to the display refresh rate")
	rootCmd.Flags().IntVar(&cfg.MSAA, "msaa", cfg.MSAA, "MSAA sample count (1, 4, 8, or 16)")
	rootCmd.Flags().Float64Var(&cfg.FPSCap, "fps-cap", cfg.FPSCap, "render frame rate cap (0 = uncapped)")
	rootCmd.Flags().BoolVar(&cfg.Software, "software", cfg.Software, "force the software (fallback) GPU adapter")
	rootCmd.Flags().Float64Var(&cfg.TickRate, "tick-rate", cfg.TickRate, "logic tick rate in Hz")
	rootCmd.Flags().BoolVar(&cfg.Profile, "profile", cfg.Profile, "log frame timing statistics")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
