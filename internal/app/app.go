package app

import (
	"github.com/spf13/cobra"

	"github.com/NeuroGhostOutput/Decentralized-Ethical-Protocol-Framework/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "depaudit",
		Short:         "Rule-based smart contract auditor: findings, risk score, test cases and patches",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cli.AddCommands(root)
	return root
}
