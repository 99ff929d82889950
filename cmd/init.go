package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/breathe/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a breathe.yaml with the default settings",
	Long:  `Creates breathe.yaml (or the given path) with default settings. Existing files are left alone.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := "breathe.yaml"
	if len(args) == 1 {
		configPath = args[0]
	}

	if err := config.WriteDefault(configPath); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}
