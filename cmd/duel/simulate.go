package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/simulate"
)

var (
	flagSimMode     string
	flagSimMaxTurns int
	flagSimVerbose  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [encounter]",
	Short: "Play encounters headlessly",
	Long: `Resolve duels without a terminal UI or monster delay and print the
outcome. The player always uses the strongest ready ability, so results
are fully determined by the config. Useful for balancing encounters.

Examples:
  duel simulate
  duel simulate dragon --mode tactics --verbose
  duel simulate --difficulty hard --config ./my-duel.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimMode, "mode", "classic", "Mode: classic or tactics")
	simulateCmd.Flags().IntVar(&flagSimMaxTurns, "max-turns", simulate.DefaultMaxTurns, "Give up after this many attacks")
	simulateCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Print every attack")
}

func runSimulate(_ *cobra.Command, args []string) error {
	gameID, err := gameIDForMode(flagSimMode)
	if err != nil {
		return err
	}
	opts := simulate.Options{
		Tactics:  gameID == "duel_tactics",
		MaxTurns: flagSimMaxTurns,
	}

	var results []simulate.Result
	if len(args) == 1 {
		enc, err := lookupEncounter(duelCfg, args[0])
		if err != nil {
			return err
		}
		results = []simulate.Result{simulate.Run(duelCfg, enc, opts)}
	} else {
		results = simulate.RunAll(duelCfg, opts)
	}

	fmt.Printf("%s vs %d encounter(s), %s mode\n\n", duelCfg.Player.Name, len(results), flagSimMode)
	fmt.Printf("  %-10s  %-8s  %5s  %9s  %10s\n", "Encounter", "Result", "Turns", "Player HP", "Monster HP")
	fmt.Printf("  %-10s  %-8s  %5s  %9s  %10s\n", "---------", "------", "-----", "---------", "----------")

	wins := 0
	for _, r := range results {
		result := "defeat"
		switch {
		case !r.Finished:
			result = "timeout"
		case r.PlayerWon():
			result = "victory"
			wins++
		}
		sum := r.Summary
		fmt.Printf("  %-10s  %-8s  %5d  %9d  %10d\n", r.Encounter, result, sum.Turns, sum.PlayerHP, sum.MonsterHP)

		if flagSimVerbose {
			printEvents(r)
		}
	}

	fmt.Printf("\nWon %d of %d\n", wins, len(results))
	return nil
}

func printEvents(r simulate.Result) {
	for _, ev := range r.Events {
		fmt.Printf("      %2d. %s\n", ev.Turn, ev.String())
	}
	if r.Finished {
		if r.PlayerWon() {
			fmt.Println("      VICTORY!")
		} else {
			fmt.Println("      DEFEAT!")
		}
	}
}
