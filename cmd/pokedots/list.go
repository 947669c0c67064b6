package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/poke-the-dots/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends the game can run in.`,
	Run: func(_ *cobra.Command, _ []string) {
		printFrontends(os.Stdout, registry.List())
	},
}

func printFrontends(w io.Writer, frontends []registry.Info) {
	if len(frontends) == 0 {
		fmt.Fprintln(w, "No frontends available.")
		return
	}

	fmt.Fprintln(w, "Available frontends:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	// Print header
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range frontends {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pokedots --frontend <id>' to play.")
}
