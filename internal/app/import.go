package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"xmp-reconcile/internal/core"
)

// Import merges a csv sheet into the discovered items' packets. Sheet rows
// are authoritative: array fields are fully replaced by the row value.
// Write-back happens only with --write, only for items whose packet
// actually changed, and a store rejection is reported per item without
// stopping the batch.
func (s Service) Import(ctx context.Context, req ImportRequest) (ImportResult, error) {
	assert.NotEmpty(ctx, req.Path, "path must be set")
	assert.NotEmpty(ctx, req.CSVPath, "csv path must be set")
	if err := s.loadSchemas(req.Schemas); err != nil {
		return ImportResult{}, err
	}

	rows, err := s.Tabular.ReadRows(req.CSVPath)
	if err != nil {
		return ImportResult{}, err
	}
	items, err := s.discoverItems(req.Path)
	if err != nil {
		return ImportResult{}, err
	}

	merge := core.NewMergeEngine(s.Schema)
	result := ImportResult{Items: len(items)}
	for _, item := range items {
		row, ok := rows[item.Filename]
		if !ok {
			continue
		}
		result.Matched++

		packet, ok, err := s.Packets.Open(item.Path)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("file", item.Filename).Msg("failed to open packet")
			continue
		}
		if !ok {
			log.Ctx(ctx).Warn().Str("file", item.Filename).Msg("no packet to merge into")
			continue
		}

		mutations, err := merge.MergeRow(ctx, packet, row)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("file", item.Filename).Msg("row merge failed")
			continue
		}
		result.Mutations += mutations

		if !req.Write || mutations == 0 {
			continue
		}
		if err := s.Packets.WriteBack(item.Path, packet); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("file", item.Filename).Msg("packet write-back rejected")
			result.Rejected = append(result.Rejected, item.Filename)
			continue
		}
		result.Written++
	}
	return result, nil
}
