package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/rules"
)

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "rules", Short: "List available rules"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the built-in vulnerability signatures",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range rules.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", r.Kind, r.Severity, r.Name)
			}
			return nil
		},
	})
	return cmd
}
