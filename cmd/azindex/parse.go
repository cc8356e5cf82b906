package main

import (
	"github.com/spf13/cobra"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
)

var (
	// parseCmd represents the `parse` sub-command itself. It deliberately skips the search-service setup so
	// that reports can be inspected without credentials.
	parseCmd = &cobra.Command{
		Use:               "parse",
		Short:             "Parse a report document without uploading it",
		PersistentPreRunE: unsafeInitParsingOnly,
	}

	// parseResultsCmd is the 'results' sub-command of 'parse'
	parseResultsCmd = &cobra.Command{
		Use:  "results [file...]",
		Long: descriptionParseResults,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.WithStack(indexer.Parse(cmd.Context(), args))
		},
	}
)

func init() {
	parseCmd.AddCommand(parseResultsCmd)
	rootCmd.AddCommand(parseCmd)
}
