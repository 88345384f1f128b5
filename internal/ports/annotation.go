package ports

import "xmp-reconcile/internal/types"

// AnnotationSourcePort locates and loads per-item external annotation
// fragments (e.g. a photo-sharing service's JSON export).
type AnnotationSourcePort interface {
	// ItemID extracts the external item identifier from a filename. ok is
	// false when no identifier could be parsed.
	ItemID(filename string) (id string, ok bool)

	// Load reads the fragment for an item id from the annotation directory
	// and normalizes it: tag-like record lists are flattened and
	// deduplicated into plain string collections. ok is false when the item
	// has no fragment file.
	Load(dir string, id string) (fragment types.AnnotationFragment, ok bool, err error)
}
