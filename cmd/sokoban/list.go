package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/packs"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available level packs",
	Long:  `Shows the built-in packs plus any packs found in the packs directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	loader := packs.NewLoader(config.ExpandPath(cfg.Packs.Dir))
	all, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading packs: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No packs available.")
		return
	}

	// Progress is optional decoration; ignore storage errors here.
	progress := map[string]int{}
	if store, serr := storage.Open(cfg.Database.Path); serr == nil {
		for _, p := range all {
			if n, perr := store.Progress(p.ID); perr == nil {
				progress[p.ID] = n
			}
		}
		store.Close()
	}

	fmt.Println("Available packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range all {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-25s  %s\n", maxIDLen, "ID", "Name", "Progress")
	fmt.Printf("  %-*s  %-25s  %s\n", maxIDLen, "--", "----", "--------")

	for _, p := range all {
		fmt.Printf("  %-*s  %-25s  %d/%d\n", maxIDLen, p.ID, p.Name, progress[p.ID], p.LevelCount())
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a pack.")
}
