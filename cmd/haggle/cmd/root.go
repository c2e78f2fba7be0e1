// Package cmd implements the CLI commands for the haggle server.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/haggle/internal/config"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "haggle",
	Short: "Negotiation offers for secondhand marketplace listings",
	Long: "haggle analyzes a secondhand marketplace listing against recent sold prices,\n" +
		"the seller's apparent motivation and market trends, and suggests an offer\n" +
		"price, a confidence score and a message to send the seller.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		analyzeCmd(),
		estimateCmd(),
		versionCommand(),
	)
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the dotenv file, if any, and then the YAML config. When
// allowMissing is set a missing config file yields the defaults.
func loadConfig(allowMissing bool) (*config.Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		if allowMissing && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
