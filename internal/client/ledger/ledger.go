// Package ledger tracks question records per folder while asynchronous
// processing completes.
package ledger

import (
	"sync"

	"github.com/google/uuid"

	"testly/internal/client/models"
)

// Patch is a sparse update: only non-nil fields are applied. A patch must
// touch nothing but the fields it specifies, so two in-flight
// reconciliations for different records never lose each other's writes.
type Patch struct {
	URI    *string
	Status *models.Status
	Answer *models.Answer
}

// Ledger is the folder → question mapping, insertion order preserved.
//
// It is the only shared mutable resource in the client core. All mutations
// go through RegisterExisting, RegisterFromCapture and Update, each of which
// is an indivisible read-modify-write step under the ledger's lock.
type Ledger struct {
	mu       sync.Mutex
	byFolder map[string][]models.Question
}

func New() *Ledger {
	return &Ledger{byFolder: make(map[string][]models.Question)}
}

// Questions returns the folder's records in insertion order. Unknown
// folders yield an empty slice, never an error.
func (l *Ledger) Questions(folder string) []models.Question {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Question(nil), l.byFolder[folder]...)
}

// Find returns the record with the given id, if present.
func (l *Ledger) Find(folder, id string) (models.Question, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, q := range l.byFolder[folder] {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

// RegisterExisting appends a fully-formed record, used when the caller needs
// the id for later reconciliation. A missing status defaults to pending. An
// id already present in the folder is left untouched: ids are unique and a
// registration never replaces a record.
func (l *Ledger) RegisterExisting(folder string, q models.Question) {
	if q.Status == "" {
		q.Status = models.StatusPending
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.byFolder[folder] {
		if existing.ID == q.ID {
			return
		}
	}
	l.byFolder[folder] = append(l.byFolder[folder], q)
}

// RegisterFromCapture appends a record for an image that needs no server
// round-trip, e.g. one accepted straight from the gallery. The ledger
// synthesizes a fresh id and the record is ready immediately.
func (l *Ledger) RegisterFromCapture(folder, uri string, answer models.Answer) models.Question {
	q := models.Question{
		ID:     uuid.NewString(),
		URI:    uri,
		Status: models.StatusReady,
		Answer: answer,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.byFolder[folder] = append(l.byFolder[folder], q)

	return q
}

// Update merges the patch into the record with the given id. It reports
// whether a record was updated; an unknown folder or id is a no-op, since
// reconciliation arrival order versus session state changes is
// unconstrained.
func (l *Ledger) Update(folder, id string, p Patch) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := l.byFolder[folder]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if p.URI != nil {
			list[i].URI = *p.URI
		}
		if p.Status != nil {
			list[i].Status = *p.Status
		}
		if p.Answer != nil {
			list[i].Answer = *p.Answer
		}
		return true
	}
	return false
}

// UpdateURI is the reconciliation shortcut: it swaps in the processed image
// location and marks the record ready.
func (l *Ledger) UpdateURI(folder, id, uri string) bool {
	status := models.StatusReady
	return l.Update(folder, id, Patch{URI: &uri, Status: &status})
}
