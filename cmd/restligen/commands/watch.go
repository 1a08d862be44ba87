package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	var window time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate client bindings whenever spec files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), window)
		},
	}

	cmd.Flags().DurationVar(&window, "debounce", 500*time.Millisecond, "Quiet window before regenerating after a change")
	return cmd
}
