package main

import (
	"fmt"
	"os"

	"github.com/abdulachik/hotboard/internal/config"
	"github.com/abdulachik/hotboard/internal/monitor"
	"github.com/abdulachik/hotboard/internal/presenter"
	"github.com/spf13/cobra"
)

var (
	showLimit  int
	showFormat string
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show a saved snapshot",
	Long: `Print the top entries of a snapshot written by "fetch --output".
Defaults to HOTBOARD_OUTPUT when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", monitor.DefaultLimit, "Number of entries to show")
	showCmd.Flags().StringVar(&showFormat, "format", "table", "Output format: json or table")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := presenter.ParseFormat(showFormat)
	if err != nil {
		return err
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		path = cfg.OutputPath
	}

	snapshot, err := presenter.Load(path)
	if err != nil {
		return err
	}

	printer := presenter.NewPrinter(presenter.PrinterConfig{Out: os.Stdout, NoColor: noColor})
	printer.Banner(path, fmt.Sprintf("%s, %d entries", snapshot.Timestamp, len(snapshot.Hotsearch)))

	return presenter.Write(os.Stdout, format, monitor.ProjectN(snapshot.Hotsearch, showLimit))
}
