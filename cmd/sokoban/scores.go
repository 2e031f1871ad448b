package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/packs"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show best results",
	Long: `Display the best moves and times per level, pack by pack.

With a pack argument a plain table is printed; without one an interactive
browser opens.

Examples:
  sokoban scores
  sokoban scores classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	loader := packs.NewLoader(config.ExpandPath(cfg.Packs.Dir))

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		printPackScores(loader, store, args[0])
		return
	}

	all, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading packs: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, all, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printPackScores prints a non-interactive results table for one pack.
func printPackScores(loader *packs.Loader, store *storage.Store, packID string) {
	pack, err := loader.LoadByID(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available packs.")
		os.Exit(1)
	}

	stats, err := store.PackStats(pack.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s\n", pack.Name)
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to set the first record!\n", pack.ID)
		return
	}

	byIndex := make(map[int]storage.LevelStat, len(stats))
	for _, st := range stats {
		byIndex[st.LevelIndex] = st
	}

	fmt.Printf("  %-5s  %-20s  %-10s  %s\n", "Level", "Name", "Moves", "Time")
	fmt.Printf("  %-5s  %-20s  %-10s  %s\n", "-----", "----", "-----", "----")

	for i, lvl := range pack.Levels {
		moves, best := "-", "-"
		if st, ok := byIndex[i]; ok {
			moves = fmt.Sprintf("%d", st.BestMoves)
			best = st.BestTime.Round(time.Second).String()
		}
		fmt.Printf("  %-5d  %-20s  %-10s  %s\n", i+1, lvl.Name, moves, best)
	}
}
