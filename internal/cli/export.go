package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xmp-reconcile/internal/app"
)

type exportOptions struct {
	Path      string
	OutputDir string
	Schemas   []string
}

func newExportCommand() *cobra.Command {
	opts := exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Extract schema fields from packets and write a csv file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Path, "path", "", "Input file or directory")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Output directory (defaults next to the input)")
	cmd.Flags().StringSliceVar(&opts.Schemas, "schema", nil, "Schema overlay file paths")

	_ = viper.BindPFlag("path", cmd.Flags().Lookup("path"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("schemas", cmd.Flags().Lookup("schema"))

	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, opts exportOptions) error {
	service := newAppService()
	result, err := service.Export(ctx, app.ExportRequest{
		Path:      resolveString(cmd, opts.Path, "path", "path"),
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
		Schemas:   resolveStrings(cmd, opts.Schemas, "schemas", "schema"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("exported %d items to %s\n", result.Items, result.OutputPath)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
