package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"xmp-reconcile/internal/adapters"
)

func TestExtractHeaderOrder(t *testing.T) {
	extract := NewExtractEngine(adapters.NewSchemaFileAdapter())

	expected := []string{
		"xmp:CreateDate", "xmp:CreatorTool", "xmp:Label", "xmp:Rating",
		"photoshop:AuthorsPosition", "photoshop:Instructions",
		"dc:creator", "dc:subject", "dc:description", "dc:title",
		"Iptc4xmpExt:PersonInImage",
		"tiff:ImageWidth", "tiff:ImageLength", "tiff:Make", "tiff:Model",
		"exifEX:LensModel",
	}
	if diff := cmp.Diff(expected, extract.Header()); diff != "" {
		t.Fatalf("unexpected header (-want +got):\n%s", diff)
	}
}

func TestExtractNilPacketAllEmpty(t *testing.T) {
	schema := adapters.NewSchemaFileAdapter()
	extract := NewExtractEngine(schema)

	values := extract.Extract(t.Context(), nil)
	require.Len(t, values, len(schema.Fields()))
	for i, value := range values {
		require.Empty(t, value, "field %d", i)
	}
}

func TestExtractMissingPropertiesEmpty(t *testing.T) {
	schema := adapters.NewSchemaFileAdapter()
	extract := NewExtractEngine(schema)
	packet := adapters.NewMemoryPacket()
	require.NoError(t, packet.SetScalar("tiff", "Make", "Nikon"))

	values := extract.Extract(t.Context(), packet)
	require.Len(t, values, len(schema.Fields()))
	for i, field := range schema.Fields() {
		if field.Prefix == "tiff" && field.Property == "Make" {
			require.Equal(t, "Nikon", values[i])
			continue
		}
		require.Empty(t, values[i], "field %s", field.Key())
	}
}

func TestExtractRoundTripAfterMerge(t *testing.T) {
	schema := adapters.NewSchemaFileAdapter()
	merge := NewMergeEngine(schema)
	extract := NewExtractEngine(schema)
	packet := adapters.NewMemoryPacket()

	row := map[string]string{
		"xmp:Rating": "5",
		"dc:subject": "fish, bird",
		"dc:title":   "Winter Shore",
	}
	mutations, err := merge.MergeRow(t.Context(), packet, row)
	require.NoError(t, err)
	require.Equal(t, 4, mutations)

	values := extract.Extract(t.Context(), packet)
	byColumn := make(map[string]string, len(values))
	for i, column := range extract.Header() {
		byColumn[column] = values[i]
	}
	require.Equal(t, "5", byColumn["xmp:Rating"])
	require.Equal(t, "fish, bird", byColumn["dc:subject"])
	require.Equal(t, "Winter Shore", byColumn["dc:title"])
}
