package types

// PropertyShape is the structural kind of a metadata field's value.
// Every field key in the system maps to exactly one shape.
type PropertyShape string

const (
	ShapeScalar       PropertyShape = "scalar"
	ShapeOrderedList  PropertyShape = "ordered"
	ShapeUnorderedSet PropertyShape = "unordered"
	ShapeLocalizedAlt PropertyShape = "alternative"
)

// IsArray reports whether the shape is backed by an array property.
func (s PropertyShape) IsArray() bool {
	return s == ShapeOrderedList || s == ShapeUnorderedSet
}

// Ordered reports whether array item order is significant. The flag is
// surfaced to the packet accessor on append; the merge rules treat ordered
// and unordered arrays identically.
func (s PropertyShape) Ordered() bool {
	return s == ShapeOrderedList
}

// Valid reports whether s is one of the four known shapes.
func (s PropertyShape) Valid() bool {
	switch s {
	case ShapeScalar, ShapeOrderedList, ShapeUnorderedSet, ShapeLocalizedAlt:
		return true
	default:
		return false
	}
}
