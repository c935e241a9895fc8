package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swcstudio/domainscan/internal/config"
)

var (
	cfgFile string
	noColor bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "domainscan",
	Short: "Domain infrastructure scanner",
	Long: `domainscan inspects a domain's public infrastructure: DNS records,
registration data, page content, reachability, and security posture.

Scans run at three depths — basic (DNS only), standard (adds registration),
and comprehensive (adds content, performance, and security analysis) — and
finish with a risk assessment. Results are cached so repeated queries for
the same hostname are free.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that work without configuration
		skipConfig := map[string]bool{
			"init":    true,
			"help":    true,
			"version": true,
		}

		if skipConfig[cmd.Name()] {
			return nil
		}

		if cfgFile != "" {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		}

		// No explicit config file: try the default search paths, fall back
		// to built-in defaults when nothing is found.
		loaded, err := config.Load("")
		if err != nil {
			cfg = config.DefaultConfig()
			return nil
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Version = "0.1.0-dev"
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
