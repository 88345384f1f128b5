package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xmp-reconcile/internal/app"
)

type importOptions struct {
	Path    string
	CSVPath string
	Write   bool
	Schemas []string
}

func newImportCommand() *cobra.Command {
	opts := importOptions{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Merge a csv sheet into packets (arrays are fully replaced)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Path, "path", "", "Input file or directory")
	cmd.Flags().StringVar(&opts.CSVPath, "csv", "", "csv file with metadata to import")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Persist modified packets")
	cmd.Flags().StringSliceVar(&opts.Schemas, "schema", nil, "Schema overlay file paths")

	_ = viper.BindPFlag("path", cmd.Flags().Lookup("path"))
	_ = viper.BindPFlag("csv", cmd.Flags().Lookup("csv"))
	_ = viper.BindPFlag("write", cmd.Flags().Lookup("write"))
	_ = viper.BindPFlag("schemas", cmd.Flags().Lookup("schema"))

	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, opts importOptions) error {
	service := newAppService()
	result, err := service.Import(ctx, app.ImportRequest{
		Path:    resolveString(cmd, opts.Path, "path", "path"),
		CSVPath: resolveString(cmd, opts.CSVPath, "csv", "csv"),
		Write:   resolveBool(cmd, opts.Write, "write", "write"),
		Schemas: resolveStrings(cmd, opts.Schemas, "schemas", "schema"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("matched %d of %d items, %d mutations, %d written\n",
		result.Matched, result.Items, result.Mutations, result.Written)
	for _, filename := range result.Rejected {
		fmt.Printf("write-back rejected: %s\n", filename)
	}
	return nil
}
