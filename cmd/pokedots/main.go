// pokedots is a reflex toy: two dots bounce around the window, and releasing a
// mouse button teleports both of them. The score is the number of seconds played.
//
// Usage:
//
//	pokedots                  - Play in the default window frontend
//	pokedots --frontend tui   - Play in the terminal
//	pokedots list             - List available frontends
//	pokedots serve            - Start SSH server for remote play
//	pokedots config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game configuration YAML
//	--fps <rate>        - Override the configured frame rate
//	--seed <value>      - Set RNG seed for reproducible dot placement
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/poke-the-dots/internal/platform/term"
	_ "github.com/vovakirdan/poke-the-dots/internal/platform/tui"
	_ "github.com/vovakirdan/poke-the-dots/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pokedots",
	Short: "Poke the Dots - click to teleport two bouncing dots",
	Long: `Poke the Dots opens a window with two bouncing dots.
Releasing any mouse button teleports both dots to random positions.
The score counts the seconds since the game started. Close the window to quit.

Available commands:
  list     - Show all available frontends
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  pokedots
  pokedots --frontend tui
  pokedots --frontend term --fps 60
  pokedots --config ./my-dots.yaml
  pokedots serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
