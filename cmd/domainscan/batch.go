package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swcstudio/domainscan/internal/engine"
	"github.com/swcstudio/domainscan/internal/models"
	"github.com/swcstudio/domainscan/internal/output"
)

var batchCmd = &cobra.Command{
	Use:   "batch [hostname...]",
	Short: "Scan multiple domains",
	Long: `Scan up to 100 domains in one run. Hostnames come from the arguments,
from --file (one hostname per line, blank lines and # comments skipped), or
both.

Hosts are scanned in fixed chunks of --concurrency; a failing host is
reported in the summary without aborting the rest of the batch.

Examples:
  domainscan batch example.com example.org
  domainscan batch --file targets.txt --depth comprehensive
  domainscan batch --file targets.txt --concurrency 5 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		depthFlag, _ := cmd.Flags().GetString("depth")
		asJSON, _ := cmd.Flags().GetBool("json")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		file, _ := cmd.Flags().GetString("file")

		hostnames := append([]string{}, args...)
		if file != "" {
			fromFile, err := readHostnameFile(file)
			if err != nil {
				return err
			}
			hostnames = append(hostnames, fromFile...)
		}
		if len(hostnames) == 0 {
			return fmt.Errorf("no hostnames given: pass them as arguments or via --file")
		}

		if concurrency == 0 {
			concurrency = cfg.Batch.Concurrency
		}

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

		result, err := eng.BatchScan(context.Background(), hostnames, engine.BatchOptions{
			Concurrency: concurrency,
			Depth:       models.Depth(depthFlag),
		})
		if err != nil {
			return fmt.Errorf("batch scan failed: %w", err)
		}

		if asJSON {
			return output.WriteJSON(os.Stdout, result)
		}
		output.WriteBatchSummary(os.Stdout, result, noColor)
		return nil
	},
}

// readHostnameFile reads one hostname per line, skipping blanks and comments
func readHostnameFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening hostname file: %w", err)
	}
	defer f.Close()

	var hostnames []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		hostnames = append(hostnames, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hostname file: %w", err)
	}
	return hostnames, nil
}

func init() {
	batchCmd.Flags().String("depth", string(models.DepthStandard), "scan depth: basic, standard, comprehensive")
	batchCmd.Flags().Bool("json", false, "print the raw JSON result")
	batchCmd.Flags().Int("concurrency", 0, "hosts scanned in parallel, 1-10 (0 uses the configured default)")
	batchCmd.Flags().StringP("file", "f", "", "file with one hostname per line")

	rootCmd.AddCommand(batchCmd)
}
