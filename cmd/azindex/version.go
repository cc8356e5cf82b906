package main

import (
	"fmt"

	"github.com/spf13/cobra"

	azindex "github.com/ragulkarthick4/Azure-Search-index"
)

// versionCmd prints the version of this CLI. It overrides the root pre-run so that no service setup happens.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the azindex version",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(azindex.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
