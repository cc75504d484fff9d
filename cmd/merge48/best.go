package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akorchagin/merge48/internal/config"
	"github.com/akorchagin/merge48/internal/storage"
	"github.com/akorchagin/merge48/internal/tui"
)

var flagBestInteractive bool

var bestCmd = &cobra.Command{
	Use:   "best [variant]",
	Short: "Show best scores for a variant",
	Long: `Display the top scores and game history for the specified variant
(default: classic).

Examples:
  merge48 best
  merge48 best mission
  merge48 best classic --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagBestInteractive, "interactive", false, "Browse scores in a scrollable table")
}

func runBest(cmd *cobra.Command, args []string) {
	variantKey := "classic"
	if len(args) > 0 {
		variantKey = args[0]
	}

	if !config.Exists(variantKey) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantKey)
		fmt.Fprintln(os.Stderr, "Run 'merge48 variants' to see available variants.")
		os.Exit(1)
	}

	variant, err := config.Load(variantKey, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading variant: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBestInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunBestboard(store, variant.Key, variant.Name, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	games, err := store.TopGames(variantKey, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Scores - %s\n", variant.Name)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'merge48 play %s' to set the first score!\n", variantKey)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-4s  %s\n", "Rank", "Score", "Max Tile", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-4s  %s\n", "----", "-----", "--------", "---", "----")

	for i, g := range games {
		won := " "
		if g.Won {
			won = "*"
		}
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-4s  %s\n", i+1, g.Score, g.MaxTile, won, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(variantKey); err == nil {
		fmt.Printf("Best: %d  Games: %d  Wins: %d\n", stats.Best, stats.GamesCount, stats.Wins)
	}
}
