package ports

import "xmp-reconcile/internal/types"

// FieldSchemaPort is the static lookup over the canonical field schema and
// the external source mapping table. Both tables are seeded with built-in
// defaults and may be extended by layered overlay files; after loading they
// are read-only.
//
// Resolution misses are signalled by the ok result, never by an error: an
// unrecognized key means "skip and warn" to the caller, not failure.
type FieldSchemaPort interface {
	// Load merges a schema overlay file into the tables. Keys that already
	// exist are overridden in place (last-write wins); new keys are
	// appended after the existing order.
	Load(path string) error

	// ResolveCanonical looks up the shape of a canonical (prefix, property)
	// field key.
	ResolveCanonical(prefix string, property string) (types.PropertyShape, bool)

	// ResolveSource translates an external annotation field name into its
	// target (prefix, property, shape) triple.
	ResolveSource(field string) (types.SourceFieldTarget, bool)

	// Fields returns the canonical schema entries in column order.
	Fields() []types.SchemaField

	// SourceFields returns the mapped annotation field names in a stable
	// iteration order.
	SourceFields() []string
}
