package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akorchagin/merge48/internal/config"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List all built-in variants",
	Long: `Shows every built-in game variant with its win target and the
rules it enables.

User overrides in ~/.merge48/variants/<key>.yaml take precedence over
the built-in defaults.`,
	Run: runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	keys := config.Keys()

	if len(keys) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxKeyLen := 3 // "Key" header
	for _, k := range keys {
		if len(k) > maxKeyLen {
			maxKeyLen = len(k)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-20s  %-7s  %s\n", maxKeyLen, "Key", "Name", "Target", "Rules")
	fmt.Printf("  %-*s  %-20s  %-7s  %s\n", maxKeyLen, "---", "----", "------", "-----")

	for _, k := range keys {
		v, err := config.Load(k, "")
		if err != nil {
			continue
		}

		rules := ""
		if v.Combo.Enabled {
			rules += "combo "
		}
		if v.Revive.Enabled {
			rules += "revive "
		}
		if len(v.Missions) > 0 {
			rules += fmt.Sprintf("%d missions", len(v.Missions))
		}
		if rules == "" {
			rules = "-"
		}

		fmt.Printf("  %-*s  %-20s  %-7d  %s\n", maxKeyLen, v.Key, v.Name, v.Target, rules)
	}

	fmt.Println()
	fmt.Println("Run 'merge48 play <key>' to play a variant.")
}
