package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/memok/pkg/memok"
)

const modulePath = "github.com/mesh-intelligence/memok"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the memok version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "memok v%s\nmodule: %s\n", memok.Version, modulePath)
			return nil
		},
	}
}
