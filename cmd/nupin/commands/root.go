// Package commands implements the CLI commands for nupin.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/nupin/internal/build"
	"go.trai.ch/nupin/internal/core/domain"
	"go.trai.ch/nupin/internal/core/ports"
)

// Application is the application logic the commands drive.
type Application interface {
	Pin(ctx context.Context, path string, ids []string) (*domain.PinResult, error)
	Apply(ctx context.Context, planPath string) ([]*domain.PinResult, error)
	Inspect(ctx context.Context, path string, w io.Writer) error
}

// jsonLogger is implemented by loggers that can switch to JSON records.
type jsonLogger interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for nupin.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI driving a and reporting through logger.
func New(a Application, logger ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "nupin",
		Short: "Pin NuGet dependency versions inside built .nupkg packages",
		Long: "nupin rewrites dependency version constraints in the .nuspec manifest of a\n" +
			"package so that a bare version such as 1.2.3 becomes the exact range [1.2.3].",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.configureLogging,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Write log records as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newPinCmd())
	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	enable, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return err
	}
	if jl, ok := c.logger.(jsonLogger); ok {
		jl.SetJSON(enable)
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
