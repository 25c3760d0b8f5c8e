package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/office-chase/internal/config"
	"github.com/vovakirdan/office-chase/internal/registry"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default YAML configuration",
	Long: `Print the embedded default configuration. Save it to
~/.officechase/configs/office.yaml or ./configs/office.yaml to customize.

With --effective, print the configuration a game would actually use: the
first config found (--config, user dir, ./configs, embedded) with the
--difficulty preset applied.

Examples:
  officechase config > ~/.officechase/configs/office.yaml
  officechase config --effective --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom office config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) {
	gameID := "office"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		exitf("unknown mode %q", gameID)
	}

	if !flagEffective {
		data := config.GetDefaultYAML(gameID)
		if data == nil {
			exitf("no default config for %q", gameID)
		}
		fmt.Print(string(data))
		return
	}

	cfg, err := config.LoadOffice(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	config.ApplyOfficePreset(&cfg, config.ParsePreset(flagDifficulty))

	out, err := yaml.Marshal(cfg)
	if err != nil {
		exitf("encoding config: %v", err)
	}
	fmt.Print(string(out))
}
