package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/poke-the-dots/internal/platform/window"
	"github.com/vovakirdan/poke-the-dots/internal/registry"
)

var flagFrontend string

func init() {
	rootCmd.Flags().StringVar(&flagFrontend, "frontend", window.ID, "Frontend: window, tui or term (see 'pokedots list')")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(flagFrontend); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(id string) error {
	// Check if frontend exists
	if !registry.Exists(id) {
		return fmt.Errorf("unknown frontend %q, run 'pokedots list' to see available frontends", id)
	}

	fe, err := registry.Create(id)
	if err != nil {
		return err
	}

	if fe.Terminal() && !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("frontend %q needs an interactive terminal", id)
	}

	opts, closeLog, err := sessionOptions(fe.Terminal())
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts.Logger.Debug("starting", "frontend", id, "fps", opts.Config.FrameRate, "seed", opts.Seed)
	return fe.Run(ctx, opts)
}
