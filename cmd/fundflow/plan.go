package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/fundflow/internal/presentation/tui"
	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/aretw0/fundflow/pkg/planner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// planFlags maps flag names to the answers they stand in for.
var planFlags = []struct {
	name  string
	key   domain.AnswerKey
	usage string
}{
	{"goal", domain.AnswerGoal, "Business goal, e.g. \"hire 2 staff\""},
	{"timeline", domain.AnswerTimeline, "Months to reach the goal"},
	{"revenue", domain.AnswerCashflow, "Average monthly revenue"},
	{"expenses", domain.AnswerExpenses, "Average monthly expenses"},
	{"savings", domain.AnswerSavings, "Current business savings"},
	{"funding", domain.AnswerFunding, "self-funded, loan or external"},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a plan without the conversation",
	Long: `Computes the structured financial plan from flags. No advisor is contacted.
Missing or unparseable values fall back to the same defaults the chat uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		answers := domain.NewAnswers()
		for _, f := range planFlags {
			if v, _ := cmd.Flags().GetString(f.name); v != "" {
				answers.Set(f.key, v)
			}
		}

		res := planner.Build(answers)
		if res.Degraded() {
			fmt.Fprintf(cmd.ErrOrStderr(), "note: %v\n", res.Cause())
		}

		w := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(res.Value())
		}

		out := res.Value().Markdown()
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			if rendered, err := tui.NewRenderer()(out); err == nil {
				out = rendered
			}
		}
		fmt.Fprintln(w, out)
		return nil
	},
}

func init() {
	for _, f := range planFlags {
		planCmd.Flags().String(f.name, "", f.usage)
	}
	planCmd.Flags().Bool("json", false, "Print the plan as JSON")
	rootCmd.AddCommand(planCmd)
}
