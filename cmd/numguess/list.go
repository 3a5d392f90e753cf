package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/numguess/internal/config"
	"github.com/vovakirdan/numguess/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every variant from the profiles file with its Easy, Medium and Hard ranges and attempt budgets.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID)+1 > maxIDLen { // room for the default marker
			maxIDLen = len(v.ID) + 1
		}
	}

	fmt.Printf("  %-*s  %-12s  %-14s  %-14s  %s\n", maxIDLen, "ID", "Title", "Easy", "Medium", "Hard")
	fmt.Printf("  %-*s  %-12s  %-14s  %-14s  %s\n", maxIDLen, "--", "-----", "----", "------", "----")

	for _, v := range variants {
		id := v.ID
		if id == appConfig.DefaultVariant {
			id += "*"
		}
		fmt.Printf("  %-*s  %-12s  %-14s  %-14s  %s\n", maxIDLen, id, v.Title,
			profileCell(v.Profiles.Easy),
			profileCell(v.Profiles.Medium),
			profileCell(v.Profiles.Hard),
		)
	}

	fmt.Println()
	fmt.Println("* default variant. Columns show range / attempts.")
	fmt.Println("Run 'numguess play <id>' to play a variant.")
}

func profileCell(p config.Profile) string {
	return fmt.Sprintf("1-%d / %d", p.Range, p.MaxAttempts)
}
