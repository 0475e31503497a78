package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsFirstSeededFolder(t *testing.T) {
	d := New("Matematik", "Fizik", "Kimya")

	assert.Equal(t, []string{"Matematik", "Fizik", "Kimya"}, d.Folders())

	sel, ok := d.Selected()
	require.True(t, ok)
	assert.Equal(t, "Matematik", sel)
}

func TestNew_EmptySeedHasNoSelection(t *testing.T) {
	d := New()

	assert.Empty(t, d.Folders())
	_, ok := d.Selected()
	assert.False(t, ok)
}

func TestAdd_TrimsAndSelects(t *testing.T) {
	d := New()

	d.Add("  Tarih  ")

	assert.Equal(t, []string{"Tarih"}, d.Folders())
	sel, ok := d.Selected()
	require.True(t, ok)
	assert.Equal(t, "Tarih", sel)
}

func TestAdd_DuplicateIsIdempotentButStillSelects(t *testing.T) {
	d := New("Matematik", "Fizik")

	d.Add("Fizik")
	d.Add(" Fizik ")

	assert.Equal(t, []string{"Matematik", "Fizik"}, d.Folders())
	sel, _ := d.Selected()
	assert.Equal(t, "Fizik", sel)
}

func TestAdd_EmptyAfterTrimIsRejectedSilently(t *testing.T) {
	d := New("Matematik")

	d.Add("   ")
	d.Add("")

	assert.Equal(t, []string{"Matematik"}, d.Folders())
	sel, _ := d.Selected()
	assert.Equal(t, "Matematik", sel, "rejected names must not steal the selection")
}

func TestAdd_CaseSensitiveNames(t *testing.T) {
	d := New("Fizik")

	d.Add("fizik")

	assert.Equal(t, []string{"Fizik", "fizik"}, d.Folders())
}

func TestSetSelected_AllowsUnknownFolder(t *testing.T) {
	d := New("Matematik")

	d.SetSelected("Biyoloji")

	sel, ok := d.Selected()
	require.True(t, ok)
	assert.Equal(t, "Biyoloji", sel)
	assert.False(t, d.Contains("Biyoloji"))
}

func TestClearSelected(t *testing.T) {
	d := New("Matematik")

	d.ClearSelected()

	_, ok := d.Selected()
	assert.False(t, ok)
}

func TestFolders_ReturnsCopy(t *testing.T) {
	d := New("Matematik")

	got := d.Folders()
	got[0] = "mutated"

	assert.Equal(t, []string{"Matematik"}, d.Folders())
}
