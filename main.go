//go:build !tinygo

package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"soulstar.dev/internal/config"
	"soulstar.dev/internal/display"
	"soulstar.dev/internal/led"
	"soulstar.dev/internal/radio"
	"soulstar.dev/internal/tracker"
	"soulstar.dev/internal/ui"
)

var (
	flagConfig     string
	flagDemo       bool
	flagName       string
	flagColour     string
	flagBrightness int
	flagAdapter    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "soulstar",
		Short: "Soul Star - wearable light badge that senses nearby souls",
		Long: `Soul Star broadcasts a short-range beacon, listens for beacons from
nearby badges ("souls"), and drives an LED ring with light patterns that
reflect who is around. This host build simulates the ring in the terminal.

Real BLE scanning requires sudo or CAP_NET_ADMIN. Use --demo for a
synthetic soul field without Bluetooth hardware.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML configuration file")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run with fake souls (no Bluetooth required)")
	rootCmd.Flags().StringVar(&flagName, "name", "", "Name to broadcast in the beacon")
	rootCmd.Flags().StringVar(&flagColour, "colour", "", "Soul colour as #RRGGBB")
	rootCmd.Flags().IntVar(&flagBrightness, "brightness", -1, "Initial brightness 0-255")
	rootCmd.Flags().StringVar(&flagAdapter, "adapter", "", "Bluetooth adapter to use")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	// Build every collaborator here and hand it to its task explicitly;
	// nothing in this program lives in a package-level singleton.
	ctrl := make(chan display.Msg, cfg.QueueSize)
	trk := tracker.New(cfg.MaxSouls, cfg.FlushAge())

	model := ui.New(cfg, ctrl, trk, flagDemo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithFPS(30))
	sink := led.NewTerminal(program)

	orch := display.New(cfg, ctrl, sink, trk)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orchErr := make(chan error, 1)
	go func() {
		err := orch.Run(ctx)
		orchErr <- err
		if err != nil {
			// The display path is gone; take the UI down with it.
			program.Quit()
		}
	}()

	if flagDemo {
		field := radio.NewMockField(cfg, ctrl)
		field.Start()
		defer field.Stop()
	} else {
		mgr, err := radio.New(cfg, ctrl)
		if err != nil {
			return err
		}
		if err := mgr.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
			fmt.Fprintln(os.Stderr, "Bluetooth scanning requires elevated permissions.")
			fmt.Fprintln(os.Stderr, "Try one of:")
			fmt.Fprintln(os.Stderr, "  sudo ./soulstar")
			fmt.Fprintln(os.Stderr, "  sudo setcap cap_net_admin+ep ./soulstar")
			fmt.Fprintln(os.Stderr, "  ./soulstar --demo    (demo mode, no hardware needed)")
			return err
		}
		defer mgr.Stop()
	}

	if _, err := program.Run(); err != nil {
		return err
	}
	cancel()

	select {
	case err := <-orchErr:
		return err
	default:
		return nil
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagName != "" {
		cfg.Name = flagName
	}
	if flagColour != "" {
		c, err := parseColour(flagColour)
		if err != nil {
			return nil, err
		}
		cfg.Colour = [3]uint8{c.R, c.G, c.B}
	}
	if flagBrightness >= 0 {
		if flagBrightness > 255 {
			return nil, fmt.Errorf("brightness %d out of range 0-255", flagBrightness)
		}
		cfg.Brightness = uint8(flagBrightness)
	}
	if flagAdapter != "" {
		cfg.Adapter = flagAdapter
	}
	return cfg, cfg.Validate()
}

func parseColour(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q is not #RRGGBB", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
