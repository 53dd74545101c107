package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/frodo/internal/wire"
)

// ServerCmd returns the server command.
func ServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Run the application (node index.js)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			opts, err := wire.Options(cwd)
			if err != nil {
				return err
			}
			adapter, err := wire.GeneratorAdapterWithOutput(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return adapter.Server(cmd.Context())
		},
	}
}
