package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/credit-balloons/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.arcade/configs/balloons.yaml or ./configs/balloons.yaml and edit it to
change the rules, or pass it with --config.

Examples:
  balloons config > ~/.arcade/configs/balloons.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		data := config.GetDefaultYAML("balloons")
		if len(data) == 0 {
			fmt.Fprintln(os.Stderr, "Error: no default configuration")
			os.Exit(1)
		}
		os.Stdout.Write(data)
	},
}
