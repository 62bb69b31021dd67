// termsnake is a snake game for the terminal.
//
// Usage:
//
//	termsnake                - Play with the default driver
//	termsnake play           - Same as above
//	termsnake drivers        - List display drivers
//	termsnake config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: ~/.termsnake/snake.yaml)
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import drivers to register them
	_ "github.com/vovakirdan/termsnake/internal/platform/tcellui"
	_ "github.com/vovakirdan/termsnake/internal/platform/term"
	_ "github.com/vovakirdan/termsnake/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake in your terminal",
	Long: `termsnake is a real-time snake game on a wrapping board.
Eat food to grow and speed up; running into yourself ends the game.

Available commands:
  play     - Play a game (default)
  drivers  - Show the available display drivers
  config   - Print the effective configuration

Examples:
  termsnake
  termsnake play --driver tcell --difficulty hard
  termsnake --seed 42 --log-file /tmp/snake.log --log-level debug`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(driversCmd)
	rootCmd.AddCommand(configCmd)
}
