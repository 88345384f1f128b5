package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"xmp-reconcile/internal/core"
)

// Merge reconciles per-item annotation fragments into the discovered items'
// packets. Fragment merges are additive: existing curated values are
// preserved and only missing values are added. Items without a parseable
// annotation id or without a fragment file are skipped; all conditions are
// item-scoped.
func (s Service) Merge(ctx context.Context, req MergeRequest) (MergeResult, error) {
	assert.NotEmpty(ctx, req.Path, "path must be set")
	assert.NotEmpty(ctx, req.AnnotationsDir, "annotations directory must be set")
	if err := s.loadSchemas(req.Schemas); err != nil {
		return MergeResult{}, err
	}

	items, err := s.discoverItems(req.Path)
	if err != nil {
		return MergeResult{}, err
	}

	merge := core.NewMergeEngine(s.Schema)
	result := MergeResult{Items: len(items)}
	for _, item := range items {
		if item.AnnotationID == "" {
			log.Ctx(ctx).Debug().Str("file", item.Filename).Msg("no annotation id in filename")
			continue
		}
		fragment, ok, err := s.Annotations.Load(req.AnnotationsDir, item.AnnotationID)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("file", item.Filename).Msg("failed to load annotation fragment")
			continue
		}
		if !ok {
			log.Ctx(ctx).Debug().Str("file", item.Filename).Str("id", item.AnnotationID).Msg("no annotation fragment for item")
			continue
		}
		result.Annotated++

		packet, ok, err := s.Packets.Open(item.Path)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("file", item.Filename).Msg("failed to open packet")
			continue
		}
		if !ok {
			log.Ctx(ctx).Warn().Str("file", item.Filename).Msg("no packet to merge into")
			continue
		}

		mutations, err := merge.MergeFragment(ctx, packet, fragment)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("file", item.Filename).Msg("fragment merge failed")
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
