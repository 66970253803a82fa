package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [encounter]",
	Short: "Show recent battles and win rates",
	Long: `Display recent battles, newest first, with win rates per encounter.
Without an encounter all battles are listed.

Examples:
  duel history
  duel history goblin --limit 20
  duel history slime --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of battles to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the listed battles instead of showing them")
}

func runHistory(_ *cobra.Command, args []string) error {
	encounter := ""
	if len(args) == 1 {
		encounter = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearBattles(encounter); err != nil {
			return err
		}
		if encounter == "" {
			fmt.Println("Battle history cleared.")
		} else {
			fmt.Printf("Battle history for %s cleared.\n", encounter)
		}
		return nil
	}

	battles, err := store.RecentBattles(encounter, flagHistoryLimit)
	if err != nil {
		return err
	}

	if encounter == "" {
		fmt.Println("Recent Battles")
	} else {
		fmt.Printf("Recent Battles - %s\n", encounter)
	}
	fmt.Println()

	if len(battles) == 0 {
		fmt.Println("No battles recorded yet.")
		fmt.Println()
		fmt.Println("Run 'duel play' to fight your first one!")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-8s  %-8s  %5s  %5s  %5s\n", "Date", "Encounter", "Mode", "Result", "Turns", "Dealt", "Taken")
	fmt.Printf("  %-16s  %-10s  %-8s  %-8s  %5s  %5s  %5s\n", "----", "---------", "----", "------", "-----", "-----", "-----")
	for _, b := range battles {
		fmt.Printf("  %-16s  %-10s  %-8s  %-8s  %5d  %5d  %5d\n",
			b.CreatedAt.Format("2006-01-02 15:04"), b.Encounter, modeName(b.GameID), outcome(b),
			b.Turns, b.DamageDealt, b.DamageTaken)
	}

	return printStats(store, encounter)
}

func printStats(store *storage.Store, encounter string) error {
	stats, err := store.GetAllEncounterStats()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		if encounter == "" || id == encounter {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	fmt.Println()
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("%s: %d/%d won (%.0f%%), avg %.1f turns, best damage %d\n",
			id, st.Wins, st.Battles, st.WinRate()*100, st.AvgTurns, st.BestDamage)
	}
	return nil
}

func modeName(gameID string) string {
	if gameID == "duel_tactics" {
		return "tactics"
	}
	return "classic"
}

func outcome(b storage.BattleRecord) string {
	switch {
	case b.Winner == "":
		return "fled"
	case b.Won():
		return "victory"
	}
	return "defeat"
}
