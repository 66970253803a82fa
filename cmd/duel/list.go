package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modes and encounters",
	Long:  `Shows the registered duel modes and the encounters from the loaded config.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println("Modes:")
	fmt.Println()
	for _, g := range registry.List() {
		fmt.Printf("  %-14s  %s\n", g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Encounters:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range duelCfg.Encounters {
		maxIDLen = max(maxIDLen, len(e.ID))
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Monster")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "-------")
	for _, e := range duelCfg.Encounters {
		fmt.Printf("  %-*s  %-20s  %s (%s)\n", maxIDLen, e.ID, e.Title, e.Monster.Name, statLine(e.Monster.Stats))
	}

	fmt.Println()
	fmt.Println("Run 'duel play <encounter>' to fight.")
}
