package app

import (
	"context"
	"os"
	"path/filepath"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xmp-reconcile/internal/core"
)

// exportFilename is the default export file written into the output
// directory.
const exportFilename = "xmp_metadata.csv"

// Export extracts the schema fields from every discovered item's packet and
// writes one csv row per item. Items without a packet yield an all-empty
// row; no per-item condition aborts the batch.
func (s Service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	assert.NotEmpty(ctx, req.Path, "path must be set")
	if err := s.loadSchemas(req.Schemas); err != nil {
		return ExportResult{}, err
	}

	items, err := s.discoverItems(req.Path)
	if err != nil {
		return ExportResult{}, err
	}
	if len(items) == 0 {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no image files found under " + req.Path)
	}

	extract := core.NewExtractEngine(s.Schema)
	header := append([]string{"filename"}, extract.Header()...)

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		packet, ok, err := s.Packets.Open(item.Path)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("file", item.Filename).Msg("failed to open packet")
			packet = nil
		} else if !ok {
			log.Ctx(ctx).Debug().Str("file", item.Filename).Msg("file does not contain a packet")
		}
		rows = append(rows, append([]string{item.Filename}, extract.Extract(ctx, packet)...))
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = defaultExportDir(req.Path)
	}
	outputPath := filepath.Join(outputDir, exportFilename)
	if err := s.Tabular.WriteRows(outputPath, header, rows); err != nil {
		return ExportResult{}, err
	}

	log.Ctx(ctx).Info().Str("output", outputPath).Int("items", len(items)).Msg("metadata exported")
	return ExportResult{OutputPath: outputPath, Items: len(items)}, nil
}

// defaultExportDir places the export next to the input: a file input uses
// its parent directory, a directory input is used directly.
func defaultExportDir(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
