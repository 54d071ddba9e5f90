package main

import (
	"fmt"

	"github.com/aretw0/fundflow/internal/presentation/graph"
	"github.com/aretw0/fundflow/pkg/interview"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the interview flow visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the interview states and transitions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, err := interview.Flow()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(flow, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
