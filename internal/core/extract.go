package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"xmp-reconcile/internal/ports"
	"xmp-reconcile/internal/shared"
	"xmp-reconcile/internal/types"
)

// ExtractEngine produces one flat ordered value sequence per item, ordered
// by the canonical schema's namespace-then-property order. Extraction never
// mutates the packet and never fails: missing data degrades to an empty
// string.
type ExtractEngine struct {
	schema ports.FieldSchemaPort
}

func NewExtractEngine(schema ports.FieldSchemaPort) ExtractEngine {
	return ExtractEngine{schema: schema}
}

// Header returns the export column names in schema order.
func (e ExtractEngine) Header() []string {
	fields := e.schema.Fields()
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		columns = append(columns, shared.JoinFieldKey(field.Prefix, field.Property))
	}
	return columns
}

// Extract returns one value per schema field. A nil packet yields an
// all-empty sequence of the schema's field count.
func (e ExtractEngine) Extract(ctx context.Context, packet ports.PacketPort) []string {
	if packet == nil {
		log.Ctx(ctx).Debug().Msg("no packet handle, emitting empty row")
	}
	fields := e.schema.Fields()
	values := make([]string, 0, len(fields))
	for _, field := range fields {
		values = append(values, e.extractField(packet, field))
	}
	return values
}

func (e ExtractEngine) extractField(packet ports.PacketPort, field types.SchemaField) string {
	if packet == nil || !packet.Exists(field.Prefix, field.Property) {
		return ""
	}
	switch {
	case field.Shape.IsArray():
		count, err := packet.CountArrayItems(field.Prefix, field.Property)
		if err != nil {
			return ""
		}
		items := make([]string, 0, count)
		for i := 1; i <= count; i++ {
			item, err := packet.GetArrayItem(field.Prefix, field.Property, i)
			if err != nil {
				return ""
			}
			items = append(items, item)
		}
		return shared.JoinList(items)
	case field.Shape == types.ShapeLocalizedAlt:
		value, err := packet.GetLocalized(field.Prefix, field.Property, genericLang, readSpecificLang)
		if err != nil {
			return ""
		}
		return value
	default:
		value, err := packet.GetScalar(field.Prefix, field.Property)
		if err != nil {
			return ""
		}
		return value
	}
}
