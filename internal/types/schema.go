package types

// FieldKey identifies one metadata field by namespace prefix and property
// name. The prefix is resolvable to a full namespace URI by the packet
// accessor; (prefix, property) is unique across the whole system.
type FieldKey struct {
	Prefix   string
	Property string
}

func (k FieldKey) String() string {
	return k.Prefix + ":" + k.Property
}

// SchemaField is one canonical schema entry. The position of a field within
// a schema file determines its export column position.
type SchemaField struct {
	// Prefix is the namespace prefix, e.g. "dc" or "photoshop".
	Prefix string `yaml:"prefix"`

	// Property is the property name within the namespace, e.g. "subject".
	Property string `yaml:"property"`

	// Shape is the property's value shape.
	Shape PropertyShape `yaml:"shape"`
}

// Key returns the field's key.
func (f SchemaField) Key() FieldKey {
	return FieldKey{Prefix: f.Prefix, Property: f.Property}
}

// SourceFieldTarget describes where an external annotation field lands:
// the target namespace prefix, property name, and value shape.
type SourceFieldTarget struct {
	Prefix   string        `yaml:"prefix"`
	Property string        `yaml:"property"`
	Shape    PropertyShape `yaml:"shape"`
}

// SchemaFile is the top-level structure of a schema overlay yaml file.
//
// Overlays are layered on top of the built-in tables: fields and sources
// whose keys already exist override the existing entry in place, new keys
// are appended after the existing order. Annotation fields with no mapped
// equivalent (e.g. flickr "albums") are excluded simply by leaving them out
// of the sources table.
type SchemaFile struct {
	// SchemaVersion identifies the file format version.
	SchemaVersion string `yaml:"schema_version"`

	// Fields extends or overrides the canonical field schema.
	Fields []SchemaField `yaml:"fields,omitempty"`

	// Sources extends or overrides the external annotation field mapping.
	Sources map[string]SourceFieldTarget `yaml:"sources,omitempty"`
}
