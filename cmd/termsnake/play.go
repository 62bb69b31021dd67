package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/registry"
	"github.com/vovakirdan/termsnake/internal/snake"
)

const defaultDriver = "tea"

var (
	flagDriver     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD - Steer
  Q/Ctrl+C    - Quit
  Ctrl+S      - Save a screenshot (tea driver)

Difficulty options:
  easy   - Slower polling, gentler speed-up per food
  normal - Config values as they are
  hard   - Faster polling, sharper speed-up per food
  fixed  - No speed-up at all

Examples:
  termsnake play
  termsnake play --driver term
  termsnake play --difficulty fixed --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDriver, "driver", "", "Display driver: tea, term, tcell (default from config)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Nothing useful to do on close failure

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("difficulty %s: %w", preset, err)
	}

	keys, err := cfg.KeyMap()
	if err != nil {
		return err
	}

	driverName := resolveDriver(flagDriver, cfg)
	driver, err := lookupDriver(driverName)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	session, err := snake.NewSession(sessionOptions(cfg, rng, logger))
	if err != nil {
		return err
	}

	runtime := core.RuntimeConfig{Seed: seed, Color: cfg.Display.Color}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting game", "driver", driverName, "difficulty", preset, "seed", seed)
	runErr := driver.Run(ctx, session, registry.RunOptions{
		Keys:    keys,
		Runtime: runtime,
		Logger:  logger,
	})
	snap := session.Snapshot()
	logger.Info("game finished", "state", snap.State, "score", snap.Score, "steps", snap.Steps, "polls", snap.Polls)
	if runErr != nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	if session.State() == snake.StateGameOver {
		fmt.Fprintln(out, "Game Over")
	}
	fmt.Fprintf(out, "Score: %d\n", session.Score())
	return nil
}

// resolveDriver picks the --driver flag, then the config, then the default.
func resolveDriver(flag string, cfg config.SnakeConfig) string {
	if flag != "" {
		return flag
	}
	if cfg.Display.Driver != "" {
		return cfg.Display.Driver
	}
	return defaultDriver
}

// lookupDriver creates a registered driver or names the ones available.
func lookupDriver(name string) (registry.Driver, error) {
	if !registry.Exists(name) {
		var names []string
		for _, d := range registry.List() {
			names = append(names, d.Name)
		}
		return nil, fmt.Errorf("unknown driver %q (available: %s)", name, strings.Join(names, ", "))
	}
	return registry.Create(name)
}

// sessionOptions converts the loaded configuration into session options.
func sessionOptions(cfg config.SnakeConfig, src snake.CoordSource, logger *log.Logger) snake.Options {
	return snake.Options{
		Width:        cfg.Board.Width,
		Height:       cfg.Board.Height,
		PollInterval: cfg.Timing.PollInterval(),
		StepEvery:    cfg.Timing.StepEvery,
		Damping:      cfg.Timing.Damping,
		MinInterval:  cfg.Timing.MinInterval(),
		Source:       src,
		Logger:       logger,
	}
}
