package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate client bindings if the spec files changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Generate(cmd.Context())
		},
	}
}
