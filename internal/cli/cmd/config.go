package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lumen-shell/lumen/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cycling configuration",
	Long:  `Inspect the active configuration file and export its schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	Long: `Print the JSON schema describing every configuration key, for
settings UIs and editor completion.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("determine config directory: %w", err)
	}
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("%s (not created yet, defaults active)\n", path)
		return nil
	}
	fmt.Println(path)
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	out, err := config.JSONSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
