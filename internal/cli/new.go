package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/frodo/internal/ports/primary"
	"github.com/example/frodo/internal/wire"
)

// NewCmd returns the new command.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [project_name]",
		Short: "Create a new project",
		Long: `Create a new project directory from the project skeleton, write package.json
and install express, body-parser, mongoose, async and the views preprocessor.

Examples:
  frodo new blog
  frodo new api --skipViews
  frodo new blog --skeleton ./skeleton.yml --skipInstall`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), NewUsage)
				return nil
			}
			skipViews, _ := cmd.Flags().GetBool("skipViews")
			skeletonPath, _ := cmd.Flags().GetString("skeleton")
			skipInstall, _ := cmd.Flags().GetBool("skipInstall")

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			opts, err := wire.Options(cwd)
			if err != nil {
				return err
			}
			opts.SkipViews = skipViews

			adapter, err := wire.GeneratorAdapterWithOutput(opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, err = adapter.NewProject(cmd.Context(), primary.NewProjectRequest{
				Name:         args[0],
				SkeletonPath: skeletonPath,
				SkipInstall:  skipInstall,
			})
			return err
		},
	}

	cmd.Flags().Bool("skipViews", false, "Leave out views, assets, vendor and public folders")
	cmd.Flags().String("skeleton", "", "JSON or YAML project skeleton to use instead of the built-in one")
	cmd.Flags().Bool("skipInstall", false, "Do not run npm install")

	return cmd
}
