package main

import (
	"fmt"
	"os"

	"github.com/abdulachik/hotboard/internal/app"
	"github.com/abdulachik/hotboard/internal/config"
	"github.com/abdulachik/hotboard/internal/presenter"
	"github.com/spf13/cobra"
)

var (
	fetchOutput  string
	fetchSave    bool
	fetchQuiet   bool
	fetchStrict  bool
	fetchArchive bool
	fetchFormat  string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the hot-search board",
	Long: `Fetch the Baidu realtime hot-search board once and print the top 10 entries.

Examples:
  hotboard fetch                          # Print the top 10 as JSON
  hotboard fetch --format table           # Print the top 10 as a table
  hotboard fetch --save                   # Also write the full list to HOTBOARD_OUTPUT
  hotboard fetch -o board.json --quiet    # Only write the full list
  hotboard fetch --archive                # Also record the snapshot in the database
  hotboard fetch --strict                 # Fail if an entry lacks a field`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "Write the full entry list to this file")
	fetchCmd.Flags().BoolVar(&fetchSave, "save", false, "Write the full entry list to HOTBOARD_OUTPUT")
	fetchCmd.Flags().BoolVarP(&fetchQuiet, "quiet", "q", false, "Do not print entries")
	fetchCmd.Flags().BoolVar(&fetchStrict, "strict", false, "Require index, word, desc, hotScore and hotChange on every entry")
	fetchCmd.Flags().BoolVar(&fetchArchive, "archive", false, "Record the snapshot in the database")
	fetchCmd.Flags().StringVar(&fetchFormat, "format", "json", "Output format: json or table")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	format, err := presenter.ParseFormat(fetchFormat)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForFetch(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if fetchArchive {
		if err := cfg.ValidateForArchive(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}

	output := fetchOutput
	if output == "" && fetchSave {
		output = cfg.OutputPath
	}

	a, err := app.New(ctx, cfg, app.Options{
		Archive: fetchArchive,
		Out:     os.Stdout,
		Quiet:   fetchQuiet,
		NoColor: noColor,
	})
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer a.Close()

	_, err = a.Fetch(ctx, app.FetchOptions{
		Output: output,
		Strict: fetchStrict,
		Format: format,
	})
	return err
}
