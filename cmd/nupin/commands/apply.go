package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nupin/internal/adapters/config"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Pin dependencies of every package listed in a pin plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			planPath, _ := cmd.Flags().GetString("config")
			_, err := c.app.Apply(cmd.Context(), planPath)
			return err
		},
	}
	cmd.Flags().StringP("config", "c", config.DefaultFilename, "Path to the pin plan")
	return cmd
}
