package app

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"xmp-reconcile/internal/core"
	"xmp-reconcile/internal/shared"
)

// Inspect shows one item's schema fields and their current packet values.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	assert.NotEmpty(ctx, req.Path, "path must be set")
	if err := s.loadSchemas(req.Schemas); err != nil {
		return InspectResult{}, err
	}

	items, err := s.discoverItems(req.Path)
	if err != nil {
		return InspectResult{}, err
	}
	if len(items) != 1 {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("inspect expects a single file path")
	}
	item := items[0]

	packet, hasPacket, err := s.Packets.Open(item.Path)
	if err != nil {
		return InspectResult{}, err
	}

	extract := core.NewExtractEngine(s.Schema)
	values := extract.Extract(ctx, packet)

	fields := s.Schema.Fields()
	result := InspectResult{
		Filename:  item.Filename,
		HasPacket: hasPacket,
		Fields:    make([]FieldValue, 0, len(fields)),
	}
	for i, field := range fields {
		result.Fields = append(result.Fields, FieldValue{
			Key:   shared.JoinFieldKey(field.Prefix, field.Property),
			Shape: field.Shape,
			Value: values[i],
		})
	}
	return result, nil
}
