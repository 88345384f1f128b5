package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSidecarOpenMissing(t *testing.T) {
	store := NewSidecarStore()
	packet, ok, err := store.Open(filepath.Join(t.TempDir(), "shore.jpg"))
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, packet)
}

func TestSidecarWriteBackRoundTrip(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "shore.jpg")
	store := NewSidecarStore()

	packet := NewMemoryPacket()
	require.NoError(t, packet.SetScalar("xmp", "Rating", "5"))
	require.NoError(t, packet.AppendArrayItem("dc", "subject", "cat", false))
	require.NoError(t, packet.AppendArrayItem("dc", "subject", "bird", false))
	require.NoError(t, packet.SetLocalized("dc", "title", "en", "x-default", "Winter Shore"))
	require.NoError(t, store.WriteBack(imagePath, packet))

	reopened, ok, err := store.Open(imagePath)
	require.NoError(t, err)
	require.True(t, ok)

	value, err := reopened.GetScalar("xmp", "Rating")
	require.NoError(t, err)
	require.Equal(t, "5", value)

	count, err := reopened.CountArrayItems("dc", "subject")
	require.NoError(t, err)
	items := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		item, err := reopened.GetArrayItem("dc", "subject", i)
		require.NoError(t, err)
		items = append(items, item)
	}
	if diff := cmp.Diff([]string{"cat", "bird"}, items); diff != "" {
		t.Fatalf("unexpected array contents (-want +got):\n%s", diff)
	}

	title, err := reopened.GetLocalized("dc", "title", "en", "en-US")
	require.NoError(t, err)
	require.Equal(t, "Winter Shore", title)
}

func TestSidecarRejectsForeignPacket(t *testing.T) {
	store := NewSidecarStore()
	err := store.WriteBack(filepath.Join(t.TempDir(), "shore.jpg"), nil)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestSidecarRejectsUnwritableLocation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	store := NewSidecarStore()
	err := store.WriteBack(filepath.Join(dir, "shore.jpg"), NewMemoryPacket())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestSidecarOpenMalformed(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "shore.jpg")
	require.NoError(t, os.WriteFile(imagePath+sidecarSuffix, []byte("properties: {not: [a, list"), 0644))

	_, _, err := NewSidecarStore().Open(imagePath)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
