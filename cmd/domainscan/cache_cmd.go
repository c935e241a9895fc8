package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the result cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached scan results that are still fresh",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closer, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		defer closer()

		summaries, err := eng.ListCached(context.Background())
		if err != nil {
			return fmt.Errorf("listing cache: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("Cache is empty.")
			return nil
		}

		fmt.Printf("%-40s %-38s %s\n", "HOSTNAME", "SCAN ID", "SCANNED AT")
		for _, s := range summaries {
			fmt.Printf("%-40s %-38s %s\n", s.Hostname, s.ScanID, s.Timestamp.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all cached scan results",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closer, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		defer closer()

		if err := eng.ClearCache(context.Background()); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
