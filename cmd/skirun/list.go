package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ski-runner/internal/registry"
	"github.com/vovakirdan/ski-runner/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its best score, if a database exists.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are optional here; a missing database only hides the column.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Printf("  %-*s  %-12s  %s\n", idWidth, "ID", "Title", "Best")
	for _, g := range games {
		best := "-"
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil && high > 0 {
				best = fmt.Sprint(high)
			}
		}
		fmt.Printf("  %-*s  %-12s  %s\n", idWidth, g.ID, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'skirun play <id>' to play a game.")
}
