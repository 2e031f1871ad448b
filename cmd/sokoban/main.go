// sokoban is a terminal Sokoban with level packs, undo/redo, one-way doors,
// and wraparound levels.
//
// Usage:
//
//	sokoban list               - List available level packs
//	sokoban play <pack>        - Play a pack
//	sokoban scores [pack]      - Show best results
//	sokoban validate <file>    - Check a pack file for errors
//	sokoban serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Use a specific config file
//	--packs <dir>    - Directory with extra level packs
//	--db <path>      - Progress database path (default: ~/.sokoban/progress.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagPacksDir string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - Push boxes onto goals in your terminal",
	Long: `Sokoban is a terminal puzzle game: push every box onto a goal cell.
Some levels wrap around their edges, some have one-way doors, and every
move can be undone.

Available commands:
  list      - Show all available level packs
  play      - Play a pack
  scores    - View best moves and times per level
  validate  - Check a pack file before sharing it
  serve     - Start SSH server for remote play

Examples:
  sokoban list
  sokoban play tutorial
  sokoban play classic --level 3
  sokoban scores classic
  sokoban validate ./my-pack.lvl
  sokoban serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPacksDir, "packs", "", "Directory with extra level packs")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPacksDir != "" {
		cfg.Packs.Dir = flagPacksDir
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}
	return cfg, nil
}
