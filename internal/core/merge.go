package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"xmp-reconcile/internal/ports"
	"xmp-reconcile/internal/shared"
	"xmp-reconcile/internal/types"
)

// Alternative-text language selectors. Reads address the value through the
// generic/specific pair; writes always target the default alternative.
const (
	genericLang       = "en"
	readSpecificLang  = "en-US"
	writeSpecificLang = "x-default"
)

// MergeEngine reconciles incoming field values into a packet according to
// each field's shape and reports the number of mutations performed.
//
// The two entry points deliberately differ in array policy: MergeFragment is
// additive (existing curated items are preserved, only missing items are
// appended), MergeRow is an authoritative overwrite (the operator edited the
// sheet and intends full replacement). They share the per-shape primitives
// but are distinct named operations, not one flag-switched function.
type MergeEngine struct {
	schema ports.FieldSchemaPort
}

func NewMergeEngine(schema ports.FieldSchemaPort) MergeEngine {
	return MergeEngine{schema: schema}
}

// MergeFragment reconciles an external annotation fragment into the packet.
// Iteration is driven by the source mapping table: mapped fields absent from
// the fragment are reported and skipped, fields with empty values are
// skipped silently. Returns the number of packet mutations.
func (e MergeEngine) MergeFragment(ctx context.Context, packet ports.PacketPort, fragment types.AnnotationFragment) (int, error) {
	if packet == nil {
		log.Ctx(ctx).Warn().Msg("no packet handle, fragment merge skipped")
		return 0, nil
	}

	mutations := 0
	for _, field := range e.schema.SourceFields() {
		target, ok := e.schema.ResolveSource(field)
		if !ok {
			continue
		}
		value, ok := fragment[field]
		if !ok {
			log.Ctx(ctx).Warn().
				Str("field", field).
				Msg("mapped field not present in annotation fragment")
			continue
		}
		if value.Empty() {
			continue
		}

		applied, err := e.mergeAdditive(packet, target, value)
		if err != nil {
			return mutations, err
		}
		mutations += applied
	}
	return mutations, nil
}

// MergeRow reconciles one tabular import row into the packet. Columns are
// "prefix:property" keys resolved through the canonical schema; malformed
// or unrecognized columns are reported and skipped, empty cells are skipped
// silently. Array fields are fully replaced by the comma-split cell value.
func (e MergeEngine) MergeRow(ctx context.Context, packet ports.PacketPort, row map[string]string) (int, error) {
	if packet == nil {
		log.Ctx(ctx).Warn().Msg("no packet handle, row merge skipped")
		return 0, nil
	}

	mutations := 0
	for column, value := range row {
		if value == "" {
			continue
		}
		prefix, property, ok := shared.SplitFieldKey(column)
		if !ok {
			log.Ctx(ctx).Warn().
				Str("column", column).
				Msg("column is not in prefix:property form")
			continue
		}
		shape, ok := e.schema.ResolveCanonical(prefix, property)
		if !ok {
			log.Ctx(ctx).Warn().
				Str("prefix", prefix).
				Str("property", property).
				Msg("field is not defined in schema")
			continue
		}

		var (
			applied int
			err     error
		)
		switch {
		case shape.IsArray():
			applied, err = e.replaceArray(packet, prefix, property, shared.SplitList(value), shape.Ordered())
		case shape == types.ShapeLocalizedAlt:
			applied, err = e.mergeLocalized(packet, prefix, property, value)
		default:
			applied, err = e.mergeScalar(packet, prefix, property, value)
		}
		if err != nil {
			return mutations, err
		}
		mutations += applied
	}
	return mutations, nil
}

// mergeAdditive applies one annotation value under the additive policy.
func (e MergeEngine) mergeAdditive(packet ports.PacketPort, target types.SourceFieldTarget, value types.AnnotationValue) (int, error) {
	switch {
	case target.Shape.IsArray():
		items := value.Items
		if !value.List {
			items = []string{value.Text}
		}
		return e.appendMissing(packet, target.Prefix, target.Property, items, target.Shape.Ordered())
	case target.Shape == types.ShapeLocalizedAlt:
		return e.mergeLocalized(packet, target.Prefix, target.Property, value.Text)
	default:
		return e.mergeScalar(packet, target.Prefix, target.Property, value.Text)
	}
}

// mergeScalar sets the property when it is missing or holds a different
// value. Replace-only: concatenating with the existing value is a possible
// future extension, the current rule always overwrites on mismatch.
func (e MergeEngine) mergeScalar(packet ports.PacketPort, prefix string, property string, value string) (int, error) {
	if packet.Exists(prefix, property) {
		current, err := packet.GetScalar(prefix, property)
		if err != nil {
			return 0, err
		}
		if current == value {
			return 0, nil
		}
	}
	if err := packet.SetScalar(prefix, property, value); err != nil {
		return 0, err
	}
	return 1, nil
}

// mergeLocalized sets the default alternative when the current localized
// value is missing or different.
func (e MergeEngine) mergeLocalized(packet ports.PacketPort, prefix string, property string, value string) (int, error) {
	if packet.Exists(prefix, property) {
		current, err := packet.GetLocalized(prefix, property, genericLang, readSpecificLang)
		if err == nil && current == value {
			return 0, nil
		}
	}
	if err := packet.SetLocalized(prefix, property, genericLang, writeSpecificLang, value); err != nil {
		return 0, err
	}
	return 1, nil
}

// appendMissing appends each incoming item that is not already in the
// array. Items are compared by raw string equality; no whitespace or case
// normalization is applied. One mutation per appended item.
func (e MergeEngine) appendMissing(packet ports.PacketPort, prefix string, property string, incoming []string, ordered bool) (int, error) {
	remaining := append([]string(nil), incoming...)
	if packet.Exists(prefix, property) {
		count, err := packet.CountArrayItems(prefix, property)
		if err != nil {
			return 0, err
		}
		for i := 1; i <= count; i++ {
			current, err := packet.GetArrayItem(prefix, property, i)
			if err != nil {
				return 0, err
			}
			remaining = removeEqual(remaining, current)
		}
	}

	mutations := 0
	for _, item := range remaining {
		if item == "" {
			continue
		}
		if err := packet.AppendArrayItem(prefix, property, item, ordered); err != nil {
			return mutations, err
		}
		mutations++
	}
	return mutations, nil
}

// replaceArray deletes any existing array and rebuilds it from the incoming
// elements in order, skipping empty elements. Only appends count as
// mutations.
func (e MergeEngine) replaceArray(packet ports.PacketPort, prefix string, property string, elements []string, ordered bool) (int, error) {
	if packet.Exists(prefix, property) {
		if err := packet.Delete(prefix, property); err != nil {
			return 0, err
		}
	}

	mutations := 0
	for _, element := range elements {
		if element == "" {
			continue
		}
		if err := packet.AppendArrayItem(prefix, property, element, ordered); err != nil {
			return mutations, err
		}
		mutations++
	}
	return mutations, nil
}

func removeEqual(items []string, value string) []string {
	kept := items[:0]
	for _, item := range items {
		if item != value {
			kept = append(kept, item)
		}
	}
	return kept
}
