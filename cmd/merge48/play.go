package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akorchagin/merge48/internal/config"
	"github.com/akorchagin/merge48/internal/storage"
	"github.com/akorchagin/merge48/internal/tui"
)

var flagVariantFile string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a game of the given variant (default: classic).

Controls:
  Arrows/WASD/HJKL - Slide tiles
  N                - New game
  V                - Revive (once, when the variant allows it)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  merge48 play
  merge48 play mission
  merge48 play classic --seed 42
  merge48 play custom --variant-file ./my-variant.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariantFile, "variant-file", "", "Path to custom variant YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantKey := "classic"
	if len(args) > 0 {
		variantKey = args[0]
	}

	// A custom file may name any variant; built-in keys must exist.
	if flagVariantFile == "" && !config.Exists(variantKey) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantKey)
		fmt.Fprintln(os.Stderr, "Run 'merge48 variants' to see available variants.")
		os.Exit(1)
	}

	variant, err := config.Load(variantKey, flagVariantFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading variant: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "merge48",
	})

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(variant, store, flagSeed, logger, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
