package ports

// PacketPort is the capability set the merge and extraction engines need
// over one open metadata packet. Properties are addressed by namespace
// prefix and property name; array reads are 1-based, matching the
// underlying XMP toolkit convention.
//
// The engines are written purely against this interface and never hold
// ambient packet state: a handle is passed into every operation and its
// acquire/release lifecycle belongs to the PacketStorePort.
type PacketPort interface {
	// Exists reports whether the property is present in the packet.
	Exists(prefix string, property string) bool

	// GetScalar returns a simple string property value.
	GetScalar(prefix string, property string) (string, error)

	// SetScalar sets a simple string property, creating it if needed.
	SetScalar(prefix string, property string, value string) error

	// Delete removes the property and all of its items or alternatives.
	Delete(prefix string, property string) error

	// CountArrayItems returns the number of items in an array property.
	CountArrayItems(prefix string, property string) (int, error)

	// GetArrayItem returns the array item at a 1-based index.
	GetArrayItem(prefix string, property string, index int) (string, error)

	// AppendArrayItem appends one item to an array property, creating the
	// array on first use. The ordered flag records whether item order is
	// significant.
	AppendArrayItem(prefix string, property string, value string, ordered bool) error

	// GetLocalized returns the alternative-text value selected by the
	// generic/specific language pair.
	GetLocalized(prefix string, property string, genericLang string, specificLang string) (string, error)

	// SetLocalized sets the alternative-text value for the given
	// generic/specific language pair.
	SetLocalized(prefix string, property string, genericLang string, specificLang string, value string) error

	// NamespaceURI resolves a namespace prefix to its full URI.
	NamespaceURI(prefix string) (string, bool)
}

// PacketStorePort owns the packet open/parse/serialize lifecycle. The core
// never touches packet bytes; it only ever sees PacketPort handles.
type PacketStorePort interface {
	// Open parses the packet attached to the file at path. ok is false when
	// the file carries no packet; that is not an error.
	Open(path string) (packet PacketPort, ok bool, err error)

	// WriteBack persists a modified packet to the file at path. A store
	// that cannot accept the packet returns a failed-precondition error;
	// callers treat the rejection as item-scoped and continue the batch.
	WriteBack(path string, packet PacketPort) error
}
