package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xmp-reconcile/internal/app"
)

type mergeOptions struct {
	Path           string
	AnnotationsDir string
	Write          bool
	Schemas        []string
}

func newMergeCommand() *cobra.Command {
	opts := mergeOptions{}
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge annotation exports into packets (arrays are appended to)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMerge(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Path, "path", "", "Input file or directory")
	cmd.Flags().StringVar(&opts.AnnotationsDir, "annotations", "", "Directory with per-item annotation json files")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Persist modified packets")
	cmd.Flags().StringSliceVar(&opts.Schemas, "schema", nil, "Schema overlay file paths")

	_ = viper.BindPFlag("path", cmd.Flags().Lookup("path"))
	_ = viper.BindPFlag("annotations", cmd.Flags().Lookup("annotations"))
	_ = viper.BindPFlag("write", cmd.Flags().Lookup("write"))
	_ = viper.BindPFlag("schemas", cmd.Flags().Lookup("schema"))

	return cmd
}

func runMerge(ctx context.Context, cmd *cobra.Command, opts mergeOptions) error {
	service := newAppService()
	result, err := service.Merge(ctx, app.MergeRequest{
		Path:           resolveString(cmd, opts.Path, "path", "path"),
		AnnotationsDir: resolveString(cmd, opts.AnnotationsDir, "annotations", "annotations"),
		Write:          resolveBool(cmd, opts.Write, "write", "write"),
		Schemas:        resolveStrings(cmd, opts.Schemas, "schemas", "schema"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("annotated %d of %d items, %d mutations, %d written\n",
		result.Annotated, result.Items, result.Mutations, result.Written)
	for _, filename := range result.Rejected {
		fmt.Printf("write-back rejected: %s\n", filename)
	}
	return nil
}
