package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/games/duel"
	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick encounters from an interactive menu",
	Long: `Start the duel in interactive menu mode.

Use arrow keys or j/k to choose an opponent, left/right to switch between
classic and tactics mode, Enter to fight. After a duel you return to the
menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Switch mode
  Enter/Space  - Fight
  Tab          - Battle history
  Q            - Quit

Examples:
  duel menu
  duel menu --difficulty hard
  duel menu --db ./battles.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	items := encounterItems(duelCfg, true)
	lastMode := "duel"

	for {
		res, err := tui.RunMenu(items, store, cfg, lastMode)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsHistory:
			goBack, err := tui.RunHistory(encounterItems(duelCfg, false), store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		duel.SetEncounter(res.Encounter)
		game, err := registry.Create(res.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", res.GameID, "error", err)
			continue
		}
		lastMode = res.GameID

		goBack, err := tui.Run(game, store, cfg, tui.WithLogger(logger))
		if err != nil {
			return err
		}
		if !goBack {
			return nil
		}
	}
}
