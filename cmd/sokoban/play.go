package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/engine"
	"github.com/vovakirdan/tui-sokoban/internal/packs"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play <pack>",
	Short: "Play a level pack",
	Long: `Start playing the specified level pack.

Controls:
  Arrows/WASD - Move (pushing a box if one is in the way)
  Z           - Undo
  Y           - Redo
  R           - Restart level
  Enter       - Next level (after solving)
  Q/Ctrl+C    - Quit

Examples:
  sokoban play tutorial
  sokoban play classic --level 3
  sokoban play mypack --packs ./packs`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start at (1-based, 0 = resume from progress)")
}

func runPlay(cmd *cobra.Command, args []string) {
	packID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	loader := packs.NewLoader(config.ExpandPath(cfg.Packs.Dir))
	pack, err := loader.LoadByID(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available packs.")
		os.Exit(1)
	}

	// Open progress storage
	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	// Pick the starting level: explicit flag, else saved progress.
	start := 0
	if flagLevel > 0 {
		start = flagLevel - 1
	} else if store != nil {
		if done, perr := store.Progress(pack.ID); perr == nil {
			start = done
		}
	}
	if start >= pack.LevelCount() {
		start = pack.LevelCount() - 1
	}

	session, err := engine.NewSession(pack, start, cfg.History.Capacity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(session, store, tui.ThemeFromConfig(cfg.Theme))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
