// Package directory keeps the in-memory registry of folder names and the
// currently selected folder.
package directory

import (
	"strings"
	"sync"
)

// Directory holds folder names in creation order plus a selection pointer.
//
// The selection is a weak reference: SetSelected deliberately accepts names
// that are not present in the registry, so a folder being created in the
// same gesture can already be selected. Folders are never removed.
type Directory struct {
	mu       sync.Mutex
	folders  []string
	selected string
	hasSel   bool
}

// New seeds the directory and selects the first seeded folder, if any.
func New(seed ...string) *Directory {
	d := &Directory{folders: append([]string(nil), seed...)}
	if len(d.folders) > 0 {
		d.selected = d.folders[0]
		d.hasSel = true
	}
	return d
}

// Folders returns the folder names in creation order.
func (d *Directory) Folders() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.folders...)
}

// Add trims name and appends it unless it is already present; either way the
// trimmed name becomes the selection. Names that are empty after trimming
// are rejected silently.
func (d *Directory) Add(name string) {
	n := strings.TrimSpace(name)
	if n == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.contains(n) {
		d.folders = append(d.folders, n)
	}
	d.selected = n
	d.hasSel = true
}

// Contains reports whether a folder with the given name exists.
func (d *Directory) Contains(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contains(name)
}

func (d *Directory) contains(name string) bool {
	for _, f := range d.folders {
		if f == name {
			return true
		}
	}
	return false
}

// Selected returns the current selection, if one is set.
func (d *Directory) Selected() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selected, d.hasSel
}

// SetSelected points the selection at name without checking that the folder
// exists.
func (d *Directory) SetSelected(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = name
	d.hasSel = true
}

// ClearSelected drops the selection.
func (d *Directory) ClearSelected() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = ""
	d.hasSel = false
}
