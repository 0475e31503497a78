package capture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveCopiesIntoPhotosDir(t *testing.T) {
	tmp := t.TempDir()

	src := filepath.Join(tmp, "camera-buffer.jpg")
	require.NoError(t, os.WriteFile(src, []byte("raw"), 0o660))

	store, err := NewStore(filepath.Join(tmp, "photos"))
	require.NoError(t, err)

	saved, err := store.Save(src)
	require.NoError(t, err)
	assert.Equal(t, store.Dir(), filepath.Dir(saved))

	// The copy must survive the original being reclaimed.
	require.NoError(t, os.Remove(src))
	got, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), got)
}

func TestStore_NewEnsuresDirectory(t *testing.T) {
	tmp := t.TempDir()

	dir := filepath.Join(tmp, "a", "b", "photos")
	store, err := NewStore(dir)
	require.NoError(t, err)

	fi, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestSession_AddShotPrependsAndPicks(t *testing.T) {
	s := NewSession()

	s.AddShot("file:///1.jpg")
	s.AddShot("file:///2.jpg")

	assert.Equal(t, []string{"file:///2.jpg", "file:///1.jpg"}, s.Shots(), "newest shot first")
	assert.Equal(t, []string{"file:///1.jpg", "file:///2.jpg"}, s.Picked(), "pick order is capture order")
	assert.Equal(t, 2, s.PickedCount())
}

func TestSession_ToggleUnpicksAndRepicks(t *testing.T) {
	s := NewSession()
	s.AddShot("file:///1.jpg")
	s.AddShot("file:///2.jpg")

	assert.False(t, s.Toggle("file:///1.jpg"))
	assert.Equal(t, []string{"file:///2.jpg"}, s.Picked())

	assert.True(t, s.Toggle("file:///1.jpg"))
	assert.Equal(t, []string{"file:///2.jpg", "file:///1.jpg"}, s.Picked())
}

func TestSession_ResetClearsWorkingSet(t *testing.T) {
	s := NewSession()
	s.AddShot("file:///1.jpg")

	s.Reset()

	assert.Empty(t, s.Shots())
	assert.Empty(t, s.Picked())
	assert.Equal(t, 0, s.PickedCount())
}
