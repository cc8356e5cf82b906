package main

import (
	"github.com/spf13/cobra"

	"github.com/ragulkarthick4/Azure-Search-index/internal/errors"
)

// processCmd represents the `process` sub-command: the full parse -> build -> upload pipeline.
var processCmd = &cobra.Command{
	Use:   "process [file...]",
	Short: "Parse report documents and upload them to the search index",
	Long:  descriptionProcess,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.WithStack(indexer.Process(cmd.Context(), args))
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
}
