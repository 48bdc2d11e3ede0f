package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yamlv3 "gopkg.in/yaml.v3"

	"campusmap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists", configPath)
		}
		if err := config.DefaultConfig().Save(configPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := *cfg
		if out.S3.SecretKey != "" {
			out.S3.SecretKey = "********"
		}
		return yamlv3.NewEncoder(cmd.OutOrStdout()).Encode(out)
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
}
