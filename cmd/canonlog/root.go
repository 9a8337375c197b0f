package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/canonlog/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "canonlog",
	Short:         "Request-scoped log capture with canonical log lines",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       fmt.Sprintf("%s (%s)", Version, Commit),
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate a configuration file and print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CANONLOG_CONFIG"), "path to the YAML configuration file")
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads --config, or returns the defaults when it is unset
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}
