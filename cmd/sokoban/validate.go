package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/packs"
	"github.com/vovakirdan/tui-sokoban/internal/packs/formats"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a pack file for errors",
	Long: `Parse a pack file and report any problems with level and line numbers.

Supported formats: .lvl (text grid), .yaml/.yml.

Examples:
  sokoban validate ./my-pack.lvl
  sokoban validate ~/.sokoban/packs/custom.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	path := args[0]

	pack, err := packs.LoadFile(path)
	if err != nil {
		var loadErr *formats.LoadError
		if errors.As(err, &loadErr) {
			fmt.Fprintf(os.Stderr, "%s: invalid pack\n", path)
			fmt.Fprintf(os.Stderr, "  %v\n", loadErr)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
		os.Exit(1)
	}

	fmt.Printf("%s: OK\n", path)
	fmt.Printf("  Pack:   %s\n", pack.Name)
	fmt.Printf("  Levels: %d\n", pack.LevelCount())
	for i, lvl := range pack.Levels {
		extras := ""
		if lvl.Wrap {
			extras = " (wrap)"
		}
		fmt.Printf("    %d. %s  %dx%d, %d boxes%s\n", i+1, lvl.Name, lvl.W, lvl.H, lvl.BoxCount(), extras)
	}
}
