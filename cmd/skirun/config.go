package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ski-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game config",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective game config as YAML",
	Long: `Print the config a run would use, after the search chain and the
--difficulty preset are applied. The output is a valid config file.

Examples:
  skirun config dump > ~/.skirun/configs/ski.yaml
  skirun config dump --difficulty hard
  skirun config dump --config ./my-ski.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfigDump,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a game config file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigValidate,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadSki(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplySkiPreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func runConfigValidate(_ *cobra.Command, args []string) {
	if _, err := config.LoadSki(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s is valid\n", args[0])
}
