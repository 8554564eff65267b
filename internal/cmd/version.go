package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/create-vite/internal/output"
	"github.com/opmodel/create-vite/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var short bool

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			if short {
				output.Println(c.OutOrStdout(), info.Short())
				return nil
			}
			output.Println(c.OutOrStdout(), info.String())
			return nil
		},
	}

	c.Flags().BoolVar(&short, "short", false, "Print only the version")

	return c
}
