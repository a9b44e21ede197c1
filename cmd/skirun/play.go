package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ski-runner/internal/config"
	"github.com/vovakirdan/ski-runner/internal/core"
	"github.com/vovakirdan/ski-runner/internal/games/ski"
	"github.com/vovakirdan/ski-runner/internal/platform/tui"
	"github.com/vovakirdan/ski-runner/internal/registry"
	"github.com/vovakirdan/ski-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a run",
	Long: `Start Ski Runner directly.

Controls:
  Left/A/H, Right/D/L  - Change lane
  Space/Up/W           - Jump (again mid-air with Double Jump)
  E                    - Immortality skill (once unlocked)
  1/2/3                - Buy a shop offer
  Enter                - Start / leave the shop
  P                    - Pause
  R                    - Restart
  B/Esc                - Back to the title screen
  Ctrl+S               - Save a screenshot
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  skirun play
  skirun play --difficulty easy
  skirun play --seed 42 --fps 30
  skirun play --config ./my-ski.yaml --log ./skirun.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := ski.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skirun list' to see available games.")
		os.Exit(1)
	}

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, store, runtimeConfig(), tui.Options{
		Logger: logger,
		Player: localPlayer(),
		Bell:   os.Stdout,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags validates --config and --difficulty and hands them to the game.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.LoadSki(flagConfig); err != nil {
			return err
		}
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	ski.SetConfigPath(flagConfig)
	ski.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. A missing store only disables saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
