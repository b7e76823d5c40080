package app

import (
	"github.com/spf13/cobra"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/cli"
)

func BuildRoot() *cobra.Command {
	root := &cobra.Command{Use: "checkmysmartcontract", Short: "Heuristic vulnerability analyzer for smart contract source"}
	cli.AddCommands(root)
	return root
}
