// Package cli defines the frodo cobra commands.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/example/frodo/internal/ctxutil"
	"github.com/example/frodo/internal/version"
)

// Usage texts printed instead of failing when arguments are missing.
const (
	RootUsage     = "too few arguments\nUsage: frodo <new|generate|server> [arguments]. Run frodo --help for details."
	NewUsage      = "Usage: frodo new project_name. Example: frodo new blog"
	GenerateUsage = "Usage: frodo generate controller controller_name. Example: frodo generate controller users"
)

// RootCmd returns the frodo root command with all subcommands attached.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "frodo",
		Short:   "frodo - project generator for Express applications",
		Version: version.String(),
		Long: `frodo creates Express applications from a project skeleton and generates
controllers, views, assets, routes and mongoose models inside them.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			cmd.SetContext(ctxutil.WithLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), RootUsage)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "=> Unknown command %q\n", args[0])
			return nil
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(NewCmd())
	rootCmd.AddCommand(GenerateCmd())
	rootCmd.AddCommand(ServerCmd())

	return rootCmd
}
