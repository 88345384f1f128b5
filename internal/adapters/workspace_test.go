package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestFindImagesDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.jpg"))
	touch(t, filepath.Join(dir, "a.JPEG"))
	touch(t, filepath.Join(dir, "nested", "c.jpg"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, ".cache", "d.jpg"))

	paths, err := NewWorkspaceAdapter().FindImages(dir)
	require.NoError(t, err)

	expected := []string{
		filepath.Join(dir, "a.JPEG"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "nested", "c.jpg"),
	}
	if diff := cmp.Diff(expected, paths); diff != "" {
		t.Fatalf("unexpected paths (-want +got):\n%s", diff)
	}
}

func TestFindImagesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shore.jpg")
	touch(t, path)

	paths, err := NewWorkspaceAdapter().FindImages(path)
	require.NoError(t, err)
	require.Equal(t, []string{path}, paths)
}

func TestFindImagesMissingPath(t *testing.T) {
	_, err := NewWorkspaceAdapter().FindImages(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestFindImagesEmptyPath(t *testing.T) {
	_, err := NewWorkspaceAdapter().FindImages("")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
