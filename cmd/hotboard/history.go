package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/abdulachik/hotboard/internal/monitor"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyID    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived snapshots",
	Long: `List snapshots recorded by "fetch --archive", newest first.

Examples:
  hotboard history               # Latest 20 snapshots
  hotboard history --id <id>     # Entries of one snapshot`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of snapshots to list")
	historyCmd.Flags().StringVar(&historyID, "id", "", "Show the entries of this snapshot")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, store, err := openArchive(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if historyID != "" {
		snapshot, err := store.GetSnapshot(ctx, historyID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("snapshot %s not found", historyID)
		}
		if err != nil {
			return fmt.Errorf("get snapshot: %w", err)
		}

		entries, err := store.ListSnapshotEntries(ctx, snapshot.ID)
		if err != nil {
			return fmt.Errorf("list snapshot entries: %w", err)
		}

		fmt.Printf("Snapshot %s (%s, captured %s)\n", snapshot.ID, snapshot.Source, snapshot.CapturedAt.Local().Format("2006-01-02 15:04:05"))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Rank", "Keyword", "Score", "Description"})
		for _, entry := range entries {
			rank := monitor.NotAvailable
			if entry.Rank.Valid {
				rank = fmt.Sprint(entry.Rank.Int64)
			}
			t.AppendRow(table.Row{entry.Position + 1, rank, entry.Keyword, entry.Score, entry.Description})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	}

	snapshots, err := store.ListSnapshots(ctx, int64(historyLimit))
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots archived yet. Run: hotboard fetch --archive")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Source", "Captured", "Entries"})
	for _, s := range snapshots {
		t.AppendRow(table.Row{s.ID, s.Source, s.CapturedAt.Local().Format("2006-01-02 15:04:05"), s.EntryCount})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
