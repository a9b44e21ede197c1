// skirun is an endless ski runner for the terminal.
//
// Usage:
//
//	skirun play              - Start a run
//	skirun menu              - Launcher with difficulty picker and scoreboard
//	skirun serve             - Start SSH server for remote play
//	skirun scores            - Show high scores
//	skirun runs [run-id]     - Show recent runs or one run
//	skirun list              - List available games
//	skirun config dump       - Print the effective game config
//
// Global flags fall back to SKIRUN_* environment variables:
//
//	--fps <rate>         - Set tick rate (SKIRUN_FPS, default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay (SKIRUN_SEED)
//	--db <path>          - Set database path (SKIRUN_DB, default: ~/.skirun/scores.db)
//	--config <path>      - Custom game config YAML (SKIRUN_CONFIG)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log <path>         - Write run logs to a file (SKIRUN_LOG)
//	--log-level <level>  - Log level (SKIRUN_LOG_LEVEL, default: info)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ski-runner/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/ski-runner/internal/games/ski"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// envDefaults seeds flag defaults; envErr is reported before any command runs.
var envDefaults, envErr = loadEnvDefaults()

func loadEnvDefaults() (config.Env, error) {
	e, err := config.LoadEnv()
	if err != nil {
		return config.Env{
			DBPath:      "~/.skirun/scores.db",
			FPS:         60,
			LogLevel:    "info",
			SSHAddr:     ":23234",
			IdleTimeout: 30 * time.Minute,
		}, err
	}
	return e, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skirun",
	Short: "Ski Runner - an endless downhill runner in your terminal",
	Long: `Ski Runner is a lane-based endless runner for the terminal.
Dodge obstacles, ride ramps, grab cash and collect every year token.

Available commands:
  play     - Start a run directly
  menu     - Launcher with difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  runs     - View recent runs
  list     - Show all available games
  config   - Inspect the game config

Examples:
  skirun play
  skirun play --difficulty hard --seed 42
  skirun menu
  skirun serve --ssh :2222
  skirun runs --limit 5`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return envErr
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", envDefaults.FPS, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", envDefaults.Seed, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", envDefaults.DBPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", envDefaults.ConfigPath, "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log", envDefaults.LogFile, "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", envDefaults.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}
