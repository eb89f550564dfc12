// tunehunt is a real-time click game: artist names and track titles drift
// across the field and the player clicks the real ones before they expire.
//
// Usage:
//
//	tunehunt play                - Play in the terminal
//	tunehunt serve               - Start SSH server for remote play
//	tunehunt ws                  - Start websocket server for browser front-ends
//	tunehunt simulate            - Run headless rounds with an autoplayer
//	tunehunt sources             - List content sources
//	tunehunt catalog <command>   - Manage the local name catalog
//	tunehunt config              - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.tunehunt/config.yaml, ./configs/tunehunt.yaml)
//	--env-file <path>   - .env file with TUNEHUNT_* overrides (default: .env)
//	--fps <rate>        - Override tick rate
//	--seed <value>      - Override RNG seed
//	--log-level <lvl>   - Override log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import sources to register them
	_ "github.com/vovakirdan/tunehunt/internal/content/sources"
	_ "github.com/vovakirdan/tunehunt/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagEnvFile  string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tunehunt",
	Short: "TuneHunt - click the real artists and tracks",
	Long: `TuneHunt spawns artist names and track titles on a play field.
Some are real, some are made up. Click the real ones for +2 points;
a fake costs a point, and anything left to expire counts as a miss.

Available commands:
  play      - Play in the terminal (mouse required)
  serve     - Start SSH server for remote play
  ws        - Start websocket server for browser front-ends
  simulate  - Run headless rounds with an autoplayer
  sources   - List content sources
  catalog   - Manage the local SQLite name catalog
  config    - Print the default configuration

Examples:
  tunehunt play
  tunehunt play --mode bouncing
  tunehunt serve --ssh :2222
  tunehunt ws --addr :8080
  tunehunt simulate --mode shooting --rounds 5
  tunehunt catalog import names.json`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Path to .env file with TUNEHUNT_* overrides")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed override (0 = from config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(configCmd)
}
