package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"xmp-reconcile/internal/ports"
	"xmp-reconcile/internal/types"
)

// defaultFields is the built-in canonical field schema. Entry order is the
// export column order.
var defaultFields = []types.SchemaField{
	{Prefix: "xmp", Property: "CreateDate", Shape: types.ShapeScalar},
	{Prefix: "xmp", Property: "CreatorTool", Shape: types.ShapeScalar},
	{Prefix: "xmp", Property: "Label", Shape: types.ShapeScalar},
	{Prefix: "xmp", Property: "Rating", Shape: types.ShapeScalar},
	{Prefix: "photoshop", Property: "AuthorsPosition", Shape: types.ShapeScalar},
	{Prefix: "photoshop", Property: "Instructions", Shape: types.ShapeScalar},
	{Prefix: "dc", Property: "creator", Shape: types.ShapeOrderedList},
	{Prefix: "dc", Property: "subject", Shape: types.ShapeUnorderedSet},
	{Prefix: "dc", Property: "description", Shape: types.ShapeLocalizedAlt},
	{Prefix: "dc", Property: "title", Shape: types.ShapeLocalizedAlt},
	{Prefix: "Iptc4xmpExt", Property: "PersonInImage", Shape: types.ShapeUnorderedSet},
	{Prefix: "tiff", Property: "ImageWidth", Shape: types.ShapeScalar},
	{Prefix: "tiff", Property: "ImageLength", Shape: types.ShapeScalar},
	{Prefix: "tiff", Property: "Make", Shape: types.ShapeScalar},
	{Prefix: "tiff", Property: "Model", Shape: types.ShapeScalar},
	{Prefix: "exifEX", Property: "LensModel", Shape: types.ShapeScalar},
}

// defaultSources maps flickr annotation field names to field keys. Fields
// with no mapped equivalent (e.g. "albums") are left out deliberately; the
// merge engine skips unmapped fields by table content, not by name.
var defaultSources = []struct {
	Field  string
	Target types.SourceFieldTarget
}{
	{Field: "id", Target: types.SourceFieldTarget{Prefix: "photoshop", Property: "Instructions", Shape: types.ShapeScalar}},
	{Field: "name", Target: types.SourceFieldTarget{Prefix: "dc", Property: "title", Shape: types.ShapeLocalizedAlt}},
	{Field: "description", Target: types.SourceFieldTarget{Prefix: "dc", Property: "description", Shape: types.ShapeLocalizedAlt}},
	{Field: "tags", Target: types.SourceFieldTarget{Prefix: "dc", Property: "subject", Shape: types.ShapeUnorderedSet}},
}

// SchemaFileAdapter implements FieldSchemaPort with the built-in canonical
// tables plus layered yaml overlays. Each call to Load merges one overlay;
// later loads override earlier ones per key.
type SchemaFileAdapter struct {
	fields     []types.SchemaField
	fieldIndex map[types.FieldKey]int

	sourceOrder []string
	sources     map[string]types.SourceFieldTarget

	// layers tracks load order for debugging / provenance.
	layers []string
}

// NewSchemaFileAdapter returns a resolver seeded with the built-in tables.
func NewSchemaFileAdapter() *SchemaFileAdapter {
	a := &SchemaFileAdapter{
		fieldIndex: make(map[types.FieldKey]int),
		sources:    make(map[string]types.SourceFieldTarget),
	}
	for _, field := range defaultFields {
		a.fieldIndex[field.Key()] = len(a.fields)
		a.fields = append(a.fields, field)
	}
	for _, entry := range defaultSources {
		a.sourceOrder = append(a.sourceOrder, entry.Field)
		a.sources[entry.Field] = entry.Target
	}
	return a
}

// Load reads a schema overlay file and merges its tables. Keys already
// present override the existing entry in place; new keys are appended.
func (a *SchemaFileAdapter) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read schema file: " + path).
			WithCause(err)
	}

	var schema types.SchemaFile
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse schema file: " + path).
			WithCause(err)
	}

	if schema.SchemaVersion == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema file missing schema_version: " + path)
	}

	for _, field := range schema.Fields {
		if err := a.mergeField(field, path); err != nil {
			return err
		}
	}
	for name, target := range schema.Sources {
		if err := a.mergeSource(name, target, path); err != nil {
			return err
		}
	}

	a.layers = append(a.layers, path)
	log.Debug().
		Str("path", path).
		Int("fields", len(schema.Fields)).
		Int("sources", len(schema.Sources)).
		Msg("schema layer loaded")

	return nil
}

func (a *SchemaFileAdapter) mergeField(field types.SchemaField, path string) error {
	if strings.TrimSpace(field.Prefix) == "" || strings.TrimSpace(field.Property) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema field with empty prefix or property in " + path)
	}
	if !field.Shape.Valid() {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema field " + field.Key().String() + " has invalid shape '" + string(field.Shape) + "' in " + path)
	}

	if i, exists := a.fieldIndex[field.Key()]; exists {
		log.Debug().
			Str("field", field.Key().String()).
			Str("layer", path).
			Msg("schema field overridden by later layer")
		a.fields[i] = field
		return nil
	}
	a.fieldIndex[field.Key()] = len(a.fields)
	a.fields = append(a.fields, field)
	return nil
}

func (a *SchemaFileAdapter) mergeSource(name string, target types.SourceFieldTarget, path string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}
	if strings.TrimSpace(target.Prefix) == "" || strings.TrimSpace(target.Property) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source mapping '" + trimmed + "' has empty target in " + path)
	}
	if !target.Shape.Valid() {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source mapping '" + trimmed + "' has invalid shape '" + string(target.Shape) + "' in " + path)
	}

	if _, exists := a.sources[trimmed]; !exists {
		a.sourceOrder = append(a.sourceOrder, trimmed)
	} else {
		log.Debug().
			Str("field", trimmed).
			Str("layer", path).
			Msg("source mapping overridden by later layer")
	}
	a.sources[trimmed] = target
	return nil
}

// ResolveCanonical looks up the shape of a canonical field key.
func (a *SchemaFileAdapter) ResolveCanonical(prefix string, property string) (types.PropertyShape, bool) {
	i, ok := a.fieldIndex[types.FieldKey{Prefix: prefix, Property: property}]
	if !ok {
		return "", false
	}
	return a.fields[i].Shape, true
}

// ResolveSource translates an annotation field name to its target triple.
func (a *SchemaFileAdapter) ResolveSource(field string) (types.SourceFieldTarget, bool) {
	target, ok := a.sources[field]
	return target, ok
}

// Fields returns the canonical schema entries in column order.
func (a *SchemaFileAdapter) Fields() []types.SchemaField {
	return append([]types.SchemaField(nil), a.fields...)
}

// SourceFields returns the mapped annotation field names in table order.
func (a *SchemaFileAdapter) SourceFields() []string {
	return append([]string(nil), a.sourceOrder...)
}

var _ ports.FieldSchemaPort = (*SchemaFileAdapter)(nil)
