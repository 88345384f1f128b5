package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xmp-reconcile/internal/app"
)

type inspectOptions struct {
	Path    string
	Schemas []string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print one item's schema fields and current values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Path, "path", "", "Image file path")
	cmd.Flags().StringSliceVar(&opts.Schemas, "schema", nil, "Schema overlay file paths")

	_ = viper.BindPFlag("path", cmd.Flags().Lookup("path"))
	_ = viper.BindPFlag("schemas", cmd.Flags().Lookup("schema"))

	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		Path:    resolveString(cmd, opts.Path, "path", "path"),
		Schemas: resolveStrings(cmd, opts.Schemas, "schemas", "schema"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s (packet: %v)\n", result.Filename, result.HasPacket)
	for _, field := range result.Fields {
		fmt.Printf("  %-28s %-12s %s\n", field.Key, field.Shape, field.Value)
	}
	return nil
}
