package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xmp-reconcile/internal/types"
)

func TestItemID(t *testing.T) {
	adapter := NewFlickrAnnotationAdapter()
	tests := []struct {
		filename string
		id       string
		ok       bool
	}{
		{"53112028570_0f6a4a22fb_o.jpg", "53112028570", true},
		{"winter_shore_53112028570_o.jpg", "53112028570", true},
		{"53112028570.jpg", "53112028570", true},
		{"winter_shore.jpg", "", false},
		{"IMG20230815.jpg", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			id, ok := adapter.ItemID(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestLoadFragmentNormalizesValues(t *testing.T) {
	dir := t.TempDir()
	content := `{
  "id": "53112028570",
  "name": "Winter Shore",
  "description": "",
  "albums": ["Favorites"],
  "tags": [{"tag": "sunset"}, {"tag": "shore"}, {"tag": "sunset"}],
  "count_views": 42
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo_53112028570.json"), []byte(content), 0644))

	fragment, ok, err := NewFlickrAnnotationAdapter().Load(dir, "53112028570")
	require.NoError(t, err)
	require.True(t, ok)

	expected := types.AnnotationFragment{
		"id":          {Text: "53112028570"},
		"name":        {Text: "Winter Shore"},
		"description": {Text: ""},
		"albums":      {Items: []string{"Favorites"}, List: true},
		"tags":        {Items: []string{"sunset", "shore"}, List: true},
	}
	if diff := cmp.Diff(expected, fragment); diff != "" {
		t.Fatalf("unexpected fragment (-want +got):\n%s", diff)
	}
}

func TestLoadFragmentStringList(t *testing.T) {
	dir := t.TempDir()
	content := `{"tags": ["sunset", "shore", "sunset"]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo_1.json"), []byte(content), 0644))

	fragment, ok, err := NewFlickrAnnotationAdapter().Load(dir, "1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"sunset", "shore"}, fragment["tags"].Items)
}

func TestLoadFragmentMissing(t *testing.T) {
	fragment, ok, err := NewFlickrAnnotationAdapter().Load(t.TempDir(), "53112028570")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, fragment)
}

func TestLoadFragmentMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo_1.json"), []byte("{not json"), 0644))

	_, _, err := NewFlickrAnnotationAdapter().Load(dir, "1")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
