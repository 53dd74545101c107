package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/frodo/internal/adapters/cli"
	"github.com/example/frodo/internal/ports/primary"
	"github.com/example/frodo/internal/wire"
)

// GenerateCmd returns the generate command group.
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"g"},
		Short:   "Generate controllers, models and scaffolds",
		Long: `Generate code inside an existing project. Run from the project root.

Examples:
  frodo generate controller users index show
  frodo generate model post title:String published:Boolean:true
  frodo generate scaffold post title body:String:required`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), GenerateUsage)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("skipViews", false, "Do not generate views")
	cmd.PersistentFlags().Bool("skipAssets", false, "Do not generate javascript and stylesheet files")

	cmd.AddCommand(generateControllerCmd())
	cmd.AddCommand(generateModelCmd())
	cmd.AddCommand(generateScaffoldCmd())

	return cmd
}

func generateControllerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "controller [name] [actions...]",
		Short: "Generate a controller with views, assets and routes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), GenerateUsage)
				return nil
			}
			adapter, err := generatorAdapter(cmd)
			if err != nil {
				return err
			}
			_, err = adapter.GenerateController(cmd.Context(), primary.GenerateControllerRequest{
				Name:    args[0],
				Actions: args[1:],
			})
			return err
		},
	}
}

func generateModelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "model [name] [name:type:required...]",
		Short: "Generate a mongoose model",
		Long: `Generate app/models/<name>.js. Each property is name[:type[:required]].
Types: String, Number, Date, Buffer, Boolean, Mixed, ObjectId, Array (default String).
name:true is shorthand for a required String.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), GenerateUsage)
				return nil
			}
			adapter, err := generatorAdapter(cmd)
			if err != nil {
				return err
			}
			_, err = adapter.GenerateModel(cmd.Context(), primary.GenerateModelRequest{
				Name:       args[0],
				Properties: args[1:],
			})
			return err
		},
	}
}

func generateScaffoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scaffold [name] [name:type:required...]",
		Short: "Generate a controller with index, show, new, edit, create, update and delete plus a model",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), GenerateUsage)
				return nil
			}
			adapter, err := generatorAdapter(cmd)
			if err != nil {
				return err
			}
			_, err = adapter.GenerateScaffold(cmd.Context(), primary.GenerateModelRequest{
				Name:       args[0],
				Properties: args[1:],
			})
			return err
		},
	}
}

// generatorAdapter builds the adapter for the current directory, applying
// the generate flags to the loaded options.
func generatorAdapter(cmd *cobra.Command) (*cliadapter.GeneratorAdapter, error) {
	skipViews, _ := cmd.Flags().GetBool("skipViews")
	skipAssets, _ := cmd.Flags().GetBool("skipAssets")

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	opts, err := wire.Options(cwd)
	if err != nil {
		return nil, err
	}
	opts.SkipViews = skipViews
	opts.SkipAssets = opts.SkipAssets || skipAssets

	return wire.GeneratorAdapterWithOutput(opts, cmd.OutOrStdout())
}
