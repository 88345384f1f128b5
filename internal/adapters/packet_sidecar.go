package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"xmp-reconcile/internal/ports"
	"xmp-reconcile/internal/shared"
)

// sidecarSuffix is appended to the image path to form its packet sidecar
// path, e.g. "shore.jpg" -> "shore.jpg.xmp.yaml".
const sidecarSuffix = ".xmp.yaml"

type sidecarFile struct {
	Namespaces map[string]string `yaml:"namespaces,omitempty"`
	Properties []sidecarProperty `yaml:"properties"`
}

type sidecarProperty struct {
	// Key is the "prefix:property" field key.
	Key string `yaml:"key"`

	// Kind is scalar, array, or alt.
	Kind string `yaml:"kind"`

	Ordered bool              `yaml:"ordered,omitempty"`
	Value   string            `yaml:"value,omitempty"`
	Items   []string          `yaml:"items,omitempty"`
	Alts    map[string]string `yaml:"alts,omitempty"`
}

// SidecarStore implements the packet store over yaml sidecar files kept
// next to each image. Open parses the sidecar into a MemoryPacket;
// WriteBack serializes the packet and replaces the sidecar.
type SidecarStore struct{}

func NewSidecarStore() SidecarStore {
	return SidecarStore{}
}

// Open parses the packet sidecar for the image at path. A missing sidecar
// means the file carries no packet and is reported via ok=false, not as an
// error.
func (s SidecarStore) Open(path string) (ports.PacketPort, bool, error) {
	data, err := os.ReadFile(sidecarPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read packet sidecar for " + path).
			WithCause(err)
	}

	var file sidecarFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse packet sidecar for " + path).
			WithCause(err)
	}

	packet := NewMemoryPacket()
	for prefix, uri := range file.Namespaces {
		packet.RegisterNamespace(prefix, uri)
	}
	for _, property := range file.Properties {
		if err := loadSidecarProperty(packet, property, path); err != nil {
			return nil, false, err
		}
	}
	return packet, true, nil
}

// WriteBack serializes the packet and replaces the sidecar. A packet that
// did not originate from this store, or a sidecar location that cannot be
// written, rejects the write; callers report the rejection per item and
// continue the batch.
func (s SidecarStore) WriteBack(path string, packet ports.PacketPort) error {
	memory, ok := packet.(*MemoryPacket)
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("packet can not be put back in " + path)
	}

	file := sidecarFile{Namespaces: memory.Namespaces()}
	for _, snapshot := range memory.Properties() {
		file.Properties = append(file.Properties, sidecarProperty{
			Key:     snapshot.Key.String(),
			Kind:    string(snapshot.Kind),
			Ordered: snapshot.Ordered,
			Value:   snapshot.Value,
			Items:   snapshot.Items,
			Alts:    snapshot.Alts,
		})
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize packet for " + path).
			WithCause(err)
	}
	if err := os.WriteFile(sidecarPath(path), data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("packet can not be put back in " + path).
			WithCause(err)
	}
	return nil
}

func loadSidecarProperty(packet *MemoryPacket, property sidecarProperty, path string) error {
	prefix, name, ok := shared.SplitFieldKey(property.Key)
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("packet sidecar for " + path + " has malformed property key '" + property.Key + "'")
	}
	switch PropertyKind(property.Kind) {
	case PropertyKindScalar:
		return packet.SetScalar(prefix, name, property.Value)
	case PropertyKindArray:
		for _, item := range property.Items {
			if err := packet.AppendArrayItem(prefix, name, item, property.Ordered); err != nil {
				return err
			}
		}
		return nil
	case PropertyKindAlt:
		for lang, value := range property.Alts {
			if err := packet.SetLocalized(prefix, name, "", lang, value); err != nil {
				return err
			}
		}
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("packet sidecar for " + path + " has unknown property kind '" + property.Kind + "'")
	}
}

func sidecarPath(path string) string {
	return path + sidecarSuffix
}

var _ ports.PacketStorePort = SidecarStore{}
