package adapters

import (
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"xmp-reconcile/internal/ports"
	"xmp-reconcile/internal/types"
)

// defaultNamespaces maps the well-known prefixes of the built-in schema to
// their registered namespace URIs.
var defaultNamespaces = map[string]string{
	"xmp":         "http://ns.adobe.com/xap/1.0/",
	"photoshop":   "http://ns.adobe.com/photoshop/1.0/",
	"dc":          "http://purl.org/dc/elements/1.1/",
	"Iptc4xmpExt": "http://iptc.org/std/Iptc4xmpExt/2008-02-29/",
	"tiff":        "http://ns.adobe.com/tiff/1.0/",
	"exifEX":      "http://cipa.jp/exif/1.0/",
}

type arrayProperty struct {
	ordered bool
	items   []string
}

// PropertyKind distinguishes the three storage forms a packet property can
// take.
type PropertyKind string

const (
	PropertyKindScalar PropertyKind = "scalar"
	PropertyKindArray  PropertyKind = "array"
	PropertyKindAlt    PropertyKind = "alt"
)

// PropertySnapshot is one property's full state, used by packet stores to
// serialize a packet.
type PropertySnapshot struct {
	Key     types.FieldKey
	Kind    PropertyKind
	Ordered bool
	Value   string
	Items   []string
	Alts    map[string]string
}

// MemoryPacket is an in-memory packet accessor implementing the full
// capability set. It is the working form a packet store parses into and
// serializes from, and the packet double used throughout the tests.
type MemoryPacket struct {
	namespaces map[string]string
	scalars    map[types.FieldKey]string
	arrays     map[types.FieldKey]*arrayProperty
	localized  map[types.FieldKey]map[string]string
}

// NewMemoryPacket returns an empty packet with the well-known namespaces
// registered.
func NewMemoryPacket() *MemoryPacket {
	namespaces := make(map[string]string, len(defaultNamespaces))
	for prefix, uri := range defaultNamespaces {
		namespaces[prefix] = uri
	}
	return &MemoryPacket{
		namespaces: namespaces,
		scalars:    make(map[types.FieldKey]string),
		arrays:     make(map[types.FieldKey]*arrayProperty),
		localized:  make(map[types.FieldKey]map[string]string),
	}
}

// RegisterNamespace adds or replaces a prefix→URI registration.
func (p *MemoryPacket) RegisterNamespace(prefix string, uri string) {
	p.namespaces[prefix] = uri
}

func (p *MemoryPacket) Exists(prefix string, property string) bool {
	key := types.FieldKey{Prefix: prefix, Property: property}
	if _, ok := p.scalars[key]; ok {
		return true
	}
	if _, ok := p.arrays[key]; ok {
		return true
	}
	_, ok := p.localized[key]
	return ok
}

func (p *MemoryPacket) GetScalar(prefix string, property string) (string, error) {
	key := types.FieldKey{Prefix: prefix, Property: property}
	value, ok := p.scalars[key]
	if !ok {
		return "", missingProperty(key)
	}
	return value, nil
}

func (p *MemoryPacket) SetScalar(prefix string, property string, value string) error {
	p.scalars[types.FieldKey{Prefix: prefix, Property: property}] = value
	return nil
}

func (p *MemoryPacket) Delete(prefix string, property string) error {
	key := types.FieldKey{Prefix: prefix, Property: property}
	delete(p.scalars, key)
	delete(p.arrays, key)
	delete(p.localized, key)
	return nil
}

func (p *MemoryPacket) CountArrayItems(prefix string, property string) (int, error) {
	key := types.FieldKey{Prefix: prefix, Property: property}
	array, ok := p.arrays[key]
	if !ok {
		return 0, missingProperty(key)
	}
	return len(array.items), nil
}

func (p *MemoryPacket) GetArrayItem(prefix string, property string, index int) (string, error) {
	key := types.FieldKey{Prefix: prefix, Property: property}
	array, ok := p.arrays[key]
	if !ok {
		return "", missingProperty(key)
	}
	if index < 1 || index > len(array.items) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("array index out of range for " + key.String())
	}
	return array.items[index-1], nil
}

func (p *MemoryPacket) AppendArrayItem(prefix string, property string, value string, ordered bool) error {
	key := types.FieldKey{Prefix: prefix, Property: property}
	array, ok := p.arrays[key]
	if !ok {
		array = &arrayProperty{ordered: ordered}
		p.arrays[key] = array
	}
	array.items = append(array.items, value)
	return nil
}

// GetLocalized selects an alternative-text value: the specific language
// first, then the default alternative, then the generic language, then the
// lexicographically first alternative.
func (p *MemoryPacket) GetLocalized(prefix string, property string, genericLang string, specificLang string) (string, error) {
	key := types.FieldKey{Prefix: prefix, Property: property}
	alts, ok := p.localized[key]
	if !ok || len(alts) == 0 {
		return "", missingProperty(key)
	}
	if value, ok := alts[specificLang]; ok {
		return value, nil
	}
	if value, ok := alts["x-default"]; ok {
		return value, nil
	}
	if value, ok := alts[genericLang]; ok {
		return value, nil
	}
	langs := make([]string, 0, len(alts))
	for lang := range alts {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return alts[langs[0]], nil
}

func (p *MemoryPacket) SetLocalized(prefix string, property string, genericLang string, specificLang string, value string) error {
	key := types.FieldKey{Prefix: prefix, Property: property}
	alts, ok := p.localized[key]
	if !ok {
		alts = make(map[string]string)
		p.localized[key] = alts
	}
	alts[specificLang] = value
	return nil
}

func (p *MemoryPacket) NamespaceURI(prefix string) (string, bool) {
	uri, ok := p.namespaces[prefix]
	return uri, ok
}

// Namespaces returns the registered prefix→URI table.
func (p *MemoryPacket) Namespaces() map[string]string {
	namespaces := make(map[string]string, len(p.namespaces))
	for prefix, uri := range p.namespaces {
		namespaces[prefix] = uri
	}
	return namespaces
}

// Properties returns every property's state sorted by field key, for
// deterministic serialization.
func (p *MemoryPacket) Properties() []PropertySnapshot {
	var snapshots []PropertySnapshot
	for key, value := range p.scalars {
		snapshots = append(snapshots, PropertySnapshot{Key: key, Kind: PropertyKindScalar, Value: value})
	}
	for key, array := range p.arrays {
		snapshots = append(snapshots, PropertySnapshot{
			Key:     key,
			Kind:    PropertyKindArray,
			Ordered: array.ordered,
			Items:   append([]string(nil), array.items...),
		})
	}
	for key, alts := range p.localized {
		copied := make(map[string]string, len(alts))
		for lang, value := range alts {
			copied[lang] = value
		}
		snapshots = append(snapshots, PropertySnapshot{Key: key, Kind: PropertyKindAlt, Alts: copied})
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Key.String() < snapshots[j].Key.String()
	})
	return snapshots
}

func missingProperty(key types.FieldKey) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("property does not exist: " + key.String())
}

var _ ports.PacketPort = (*MemoryPacket)(nil)
