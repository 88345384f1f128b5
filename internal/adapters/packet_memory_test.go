package adapters

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMemoryPacketScalar(t *testing.T) {
	packet := NewMemoryPacket()
	require.False(t, packet.Exists("xmp", "Rating"))

	_, err := packet.GetScalar("xmp", "Rating")
	require.Error(t, err)

	require.NoError(t, packet.SetScalar("xmp", "Rating", "5"))
	require.True(t, packet.Exists("xmp", "Rating"))

	value, err := packet.GetScalar("xmp", "Rating")
	require.NoError(t, err)
	require.Equal(t, "5", value)

	require.NoError(t, packet.Delete("xmp", "Rating"))
	require.False(t, packet.Exists("xmp", "Rating"))
}

func TestMemoryPacketArray(t *testing.T) {
	packet := NewMemoryPacket()
	require.NoError(t, packet.AppendArrayItem("dc", "creator", "Ada Lovelace", true))
	require.NoError(t, packet.AppendArrayItem("dc", "creator", "Alan Turing", true))

	count, err := packet.CountArrayItems("dc", "creator")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	first, err := packet.GetArrayItem("dc", "creator", 1)
	require.NoError(t, err)
	require.Equal(t, "Ada Lovelace", first)

	_, err = packet.GetArrayItem("dc", "creator", 0)
	require.Error(t, err)
	_, err = packet.GetArrayItem("dc", "creator", 3)
	require.Error(t, err)

	_, err = packet.CountArrayItems("dc", "subject")
	require.Error(t, err)
}

func TestMemoryPacketLocalizedFallback(t *testing.T) {
	packet := NewMemoryPacket()
	require.NoError(t, packet.SetLocalized("dc", "title", "en", "x-default", "Winter Shore"))

	// en-US is absent; the default alternative answers the read.
	value, err := packet.GetLocalized("dc", "title", "en", "en-US")
	require.NoError(t, err)
	require.Equal(t, "Winter Shore", value)

	require.NoError(t, packet.SetLocalized("dc", "title", "en", "en-US", "Winter Shore (US)"))
	value, err = packet.GetLocalized("dc", "title", "en", "en-US")
	require.NoError(t, err)
	require.Equal(t, "Winter Shore (US)", value)

	_, err = packet.GetLocalized("dc", "description", "en", "en-US")
	require.Error(t, err)
}

func TestMemoryPacketNamespaces(t *testing.T) {
	packet := NewMemoryPacket()

	uri, ok := packet.NamespaceURI("dc")
	require.True(t, ok)
	require.Equal(t, "http://purl.org/dc/elements/1.1/", uri)

	_, ok = packet.NamespaceURI("custom")
	require.False(t, ok)

	packet.RegisterNamespace("custom", "http://example.com/ns/1.0/")
	uri, ok = packet.NamespaceURI("custom")
	require.True(t, ok)
	require.Equal(t, "http://example.com/ns/1.0/", uri)
}

func TestMemoryPacketPropertiesSnapshotSorted(t *testing.T) {
	packet := NewMemoryPacket()
	require.NoError(t, packet.SetScalar("xmp", "Rating", "5"))
	require.NoError(t, packet.AppendArrayItem("dc", "subject", "cat", false))
	require.NoError(t, packet.SetLocalized("dc", "title", "en", "x-default", "Winter Shore"))

	snapshots := packet.Properties()
	keys := make([]string, 0, len(snapshots))
	for _, snapshot := range snapshots {
		keys = append(keys, snapshot.Key.String())
	}
	if diff := cmp.Diff([]string{"dc:subject", "dc:title", "xmp:Rating"}, keys); diff != "" {
		t.Fatalf("unexpected snapshot order (-want +got):\n%s", diff)
	}
}
