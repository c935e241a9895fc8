package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swcstudio/domainscan/internal/models"
	"github.com/swcstudio/domainscan/internal/output"
)

var scanCmd = &cobra.Command{
	Use:   "scan <hostname>",
	Short: "Scan a single domain",
	Long: `Scan one domain at the requested depth and print the result.

Depths:
  basic          DNS records only
  standard       adds registration data (default)
  comprehensive  adds content, performance, and security analysis

A fresh cached result is returned immediately without counting against the
rate limit.

Examples:
  domainscan scan example.com
  domainscan scan example.com --depth comprehensive
  domainscan scan example.com --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		depthFlag, _ := cmd.Flags().GetString("depth")
		asJSON, _ := cmd.Flags().GetBool("json")

		eng, closer, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		defer closer()

		if !asJSON {
			output.WriteHeader(os.Stdout, noColor)
		}
		// Progress goes to stderr so piped JSON stays clean.
		eng.Subscribe(output.NewPrinter(os.Stderr, noColor))

		req := models.ScanRequest{Hostname: args[0], Depth: models.Depth(depthFlag)}
		result, err := eng.Scan(context.Background(), req)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}

		if asJSON {
			return output.WriteJSON(os.Stdout, result)
		}
		output.WriteSummary(os.Stdout, result, noColor)
		return nil
	},
}

func init() {
	scanCmd.Flags().String("depth", string(models.DepthStandard), "scan depth: basic, standard, comprehensive")
	scanCmd.Flags().Bool("json", false, "print the raw JSON result")

	rootCmd.AddCommand(scanCmd)
}
