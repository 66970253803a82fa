// duel is a turn-based terminal duel against configurable monsters.
//
// Usage:
//
//	duel list                  - List modes and encounters
//	duel play [encounter]      - Fight an encounter
//	duel menu                  - Pick encounters interactively
//	duel serve                 - Start SSH server for remote play
//	duel history [encounter]   - Show recent battles and win rates
//	duel simulate              - Play every encounter headlessly
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible encounter picks
//	--db <path>           - Set database path (default: ~/.duel/battles.db)
//	--config <path>       - Use a custom duel config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/games/duel"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	// Set up by the root command before any subcommand runs
	logger  *log.Logger
	duelCfg config.DuelConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Duel - turn-based monster fights in your terminal",
	Long: `Duel is a terminal game where you trade blows with a monster, one
attack at a time, until one of you falls.

Available commands:
  list      - Show modes and encounters
  play      - Fight an encounter directly
  menu      - Interactive encounter picker
  serve     - Start SSH server for remote play
  history   - View past battles
  simulate  - Play every encounter headlessly

Examples:
  duel list
  duel play goblin
  duel play dragon --mode tactics --difficulty easy
  duel menu
  duel serve --ssh :2222
  duel history slime`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duel/battles.db", "Path to battle history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom duel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup builds the logger and loads the duel configuration shared by all
// subcommands.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "duel",
	})

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "source", source, "encounters", len(cfg.Encounters))

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	duelCfg = cfg
	duel.Configure(cfg)
	return nil
}
