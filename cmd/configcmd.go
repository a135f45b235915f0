package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getConfigCmd returns the config command.
func getConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration in effect after merging defaults, the
config file and environment variables, in config.yaml format.`,
		RunE: runConfig,
	}
	return configCmd
}

func runConfig(_ *cobra.Command, _ []string) error {
	bs, err := yaml.Marshal(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	fmt.Print(string(bs))
	return nil
}
