package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/analysis"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/rules"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/solidity"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "rules", Short: "List available checks"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List line rules and function-level checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := rules.NewRegistry()
			reg.RegisterBuiltin()
			var metas []model.RuleMeta
			for _, r := range reg.Rules() {
				metas = append(metas, r.Meta())
			}
			metas = append(metas, solidity.StateVisibilityMeta)
			metas = append(metas, analysis.Metas()...)
			for _, m := range metas {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.ID, m.Severity, m.Title)
			}
			return nil
		},
	})
	return cmd
}
