package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/games/duel"
	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

var flagMode string

var playCmd = &cobra.Command{
	Use:   "play [encounter]",
	Short: "Fight an encounter",
	Long: `Start a duel against the given encounter, or the first configured
one when none is given. Use "random" for a seeded random pick.

Controls:
  Space/Enter  - Attack
  1-3          - Use ability (tactics mode)
  C            - Copy combat log to clipboard
  R            - Rematch (after the duel)
  B/Esc        - Leave the duel
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Monsters have 75% of their health and attack
  normal - Monsters as configured
  hard   - Monsters have 130% health and attack, and strike faster

Examples:
  duel play
  duel play goblin
  duel play dragon --mode tactics
  duel play random --seed 42
  duel play ogre --difficulty hard --config ./my-duel.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "classic", "Mode: classic or tactics")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameIDForMode(flagMode)
	if err != nil {
		return err
	}

	encounter := ""
	if len(args) == 1 {
		encounter = args[0]
	}
	if encounter != "" && encounter != duel.RandomEncounter {
		if _, err := lookupEncounter(duelCfg, encounter); err != nil {
			return err
		}
	}
	duel.SetEncounter(encounter)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger))
	return err
}
