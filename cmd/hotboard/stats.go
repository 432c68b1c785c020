package main

import (
	"fmt"
	"os"

	"github.com/abdulachik/hotboard/internal/monitor"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var statsTop int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show archive statistics",
	Long:  `Display snapshot counts and the keywords that appear most often in the archive.`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "Number of keywords to list")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, store, err := openArchive(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	totalSnapshots, err := store.CountSnapshots(ctx)
	if err != nil {
		return fmt.Errorf("count snapshots: %w", err)
	}

	totalEntries, err := store.CountSnapshotEntries(ctx)
	if err != nil {
		return fmt.Errorf("count snapshot entries: %w", err)
	}

	keywords, err := store.TopKeywords(ctx, int64(statsTop))
	if err != nil {
		return fmt.Errorf("top keywords: %w", err)
	}

	// Print stats
	fmt.Println("=== Hotboard Statistics ===")
	fmt.Println()
	fmt.Printf("Database: %s\n", cfg.DatabasePath)
	fmt.Println()
	fmt.Println("Archive:")
	fmt.Printf("  Snapshots: %d\n", totalSnapshots)
	fmt.Printf("  Entries: %d\n", totalEntries)
	fmt.Println()

	if len(keywords) > 0 {
		fmt.Println("Most frequent keywords:")
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Keyword", "Appearances", "Best rank"})
		for _, row := range keywords {
			best := monitor.NotAvailable
			if row.BestRank.Valid {
				best = fmt.Sprint(row.BestRank.Int64)
			}
			t.AppendRow(table.Row{row.Keyword, row.Appearances, best})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	}

	return nil
}
