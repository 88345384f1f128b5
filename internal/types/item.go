package types

// AnnotationValue is one normalized value from an external annotation
// fragment: either a single string or a collection of strings. Sources that
// deliver tag-like records (lists of objects exposing the value under a
// known key) are flattened into Items by the annotation adapter before the
// merge engine ever sees them.
type AnnotationValue struct {
	// Text carries the value for scalar-valued fields.
	Text string

	// Items carries the value for collection-valued fields.
	Items []string

	// List is true when Items holds the value, even if Items is empty.
	List bool
}

// Empty reports whether the value carries no data. Empty values are skipped
// entirely during merge: no mutation, no property creation.
func (v AnnotationValue) Empty() bool {
	if v.List {
		return len(v.Items) == 0
	}
	return v.Text == ""
}

// AnnotationFragment maps source-specific field names to normalized values
// for one item.
type AnnotationFragment map[string]AnnotationValue

// Item is one file's identity during a reconcile pass. The packet handle and
// mutation counter live with the use case driving the pass; the packet
// itself is owned by the packet store for the duration of the merge.
type Item struct {
	// Path is the full path to the image file.
	Path string

	// Filename is the basename of Path, the identifier used by tabular
	// import rows.
	Filename string

	// AnnotationID is the external item identifier parsed from the
	// filename, empty when none could be parsed.
	AnnotationID string
}
