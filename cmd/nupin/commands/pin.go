package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <package.nupkg> <dependency-id>...",
		Short: "Pin dependencies of one package to their exact versions",
		Long: "Rewrites every dependency with a matching id, in every target framework group,\n" +
			"to the exact form of its current version. Ids match case-sensitively; an id\n" +
			"that matches nothing leaves the package untouched.",
		Example: "  nupin pin artifacts/Cake.Example.1.0.0.nupkg Cake.Core Cake.Common",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Pin(cmd.Context(), args[0], args[1:])
			return err
		},
	}
}
