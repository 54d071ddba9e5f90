package main

import (
	"fmt"

	"github.com/aretw0/fundflow"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of fundflow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fundflow version %s\n", fundflow.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
