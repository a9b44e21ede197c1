package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ski-runner/internal/config"
	"github.com/vovakirdan/ski-runner/internal/games/ski"
	"github.com/vovakirdan/ski-runner/internal/platform/tui"
	"github.com/vovakirdan/ski-runner/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher",
	Long: `Start Ski Runner from the launcher.

Pick a difficulty with Left/Right, start a run with Enter or open the
scoreboard with Tab. Quitting a run returns you to the launcher.

Controls:
  Up/Down/j/k   - Navigate
  Left/Right    - Change difficulty
  Enter/Space   - Select
  Tab           - Scoreboard
  Q/Esc         - Quit

Examples:
  skirun menu
  skirun menu --fps 30
  skirun menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	store := openStore()
	cfg := runtimeConfig()

	preset := config.ParsePreset(flagDifficulty)
	if preset == "" {
		preset = config.DifficultyNormal
	}

	for {
		result, err := tui.RunMenu(store, ski.GameID, preset, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = result.Config

		if result.Choice == tui.ChoiceQuit {
			break
		}

		if result.Choice == tui.ChoiceScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, ski.GameID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		preset = result.Preset
		ski.SetDifficultyPreset(string(preset))

		game, err := registry.Create(ski.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			break
		}

		// Fresh seed for each session unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		err = tui.Run(game, store, cfg, tui.Options{
			Logger: logger,
			Player: localPlayer(),
			Bell:   os.Stdout,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
