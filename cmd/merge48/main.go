// merge48 is a terminal tile-merging game in the 2048 family.
//
// Usage:
//
//	merge48 play [variant]     - Play a variant (default: classic)
//	merge48 variants           - List available variants
//	merge48 best [variant]     - Show best scores for a variant
//	merge48 serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.merge48/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "merge48",
	Short: "merge48 - A tile-merging puzzle in your terminal",
	Long: `merge48 is a terminal puzzle game: slide tiles, merge equal pairs,
and chase 2048 and beyond.

Available commands:
  play      - Play a variant directly
  variants  - Show all built-in variants
  best      - View best scores and game history
  serve     - Start SSH server for remote play

Examples:
  merge48 play
  merge48 play mission
  merge48 best classic
  merge48 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.merge48/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(serveCmd)
}
