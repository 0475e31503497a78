// Package submit orchestrates the capture → register → upload → reconcile
// flow for question images.
package submit

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"testly/internal/client/ledger"
	"testly/internal/client/models"
	"testly/internal/logging"
)

var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrNotFailed       = errors.New("question is not in failed state")
)

// Controller drives one detached submission task per captured image.
//
// Submit registers the pending placeholder synchronously, before any network
// I/O, so the caller can render it immediately; everything after that
// happens in a goroutine holding only the (folder, id, uri) key it needs to
// reconcile. There is no cancellation: a task started on one screen keeps
// running after the user navigates away and still resolves into the ledger.
// Its only side effect is a single ledger write, so an orphaned task is
// harmless.
type Controller struct {
	ledger    *ledger.Ledger
	processor Processor
	logger    logging.Logger
	wg        sync.WaitGroup
}

func NewController(l *ledger.Ledger, p Processor, logger logging.Logger) *Controller {
	return &Controller{ledger: l, processor: p, logger: logger}
}

// Submit registers a pending record for the local image and starts its
// submission task. It never blocks on the network and never fails; the
// returned id is the reconciliation key.
func (c *Controller) Submit(folder, localURI string) string {
	q := models.Question{
		ID:     uuid.NewString(),
		URI:    localURI,
		Status: models.StatusPending,
	}
	c.ledger.RegisterExisting(folder, q)

	c.start(folder, q.ID, localURI)
	return q.ID
}

// SubmitBatch submits each image independently and in parallel. There is no
// atomicity across the batch: some records ending up ready and some failed
// is a valid outcome.
func (c *Controller) SubmitBatch(folder string, localURIs []string) []string {
	ids := make([]string, 0, len(localURIs))
	for _, uri := range localURIs {
		ids = append(ids, c.Submit(folder, uri))
	}
	return ids
}

// Retry resubmits a failed record through the ordinary submission path. The
// record flips back to pending first, so the UI shows it as processing
// again. Only failed records can be retried.
func (c *Controller) Retry(folder, id string) error {
	q, ok := c.ledger.Find(folder, id)
	if !ok {
		return ErrUnknownQuestion
	}
	if q.Status != models.StatusFailed {
		return ErrNotFailed
	}

	pending := models.StatusPending
	c.ledger.Update(folder, id, ledger.Patch{Status: &pending})

	c.start(folder, id, q.URI)
	return nil
}

// Wait blocks until every in-flight submission task has resolved. The REPL
// calls it on exit; tests use it instead of sleeping.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) start(folder, id, uri string) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.resolve(folder, id, uri)
	}()
}

// resolve performs the network call and writes exactly one reconciliation
// patch. Errors never escape the task boundary: a failure becomes ledger
// state plus a log line.
func (c *Controller) resolve(folder, id, uri string) {
	ctx := context.Background()

	processedURL, err := c.processor.Process(ctx, uri)
	if err != nil {
		c.logger.Warn(ctx, "submission failed", "folder", folder, "id", id, "error", err)
		failedSt := models.StatusFailed
		c.ledger.Update(folder, id, ledger.Patch{Status: &failedSt})
		return
	}

	if !c.ledger.UpdateURI(folder, id, processedURL) {
		// The record disappeared between registration and reconciliation;
		// nothing to patch.
		c.logger.Debug(ctx, "reconciliation target missing", "folder", folder, "id", id)
		return
	}
	c.logger.Info(ctx, "submission resolved", "folder", folder, "id", id, "processed_url", processedURL)
}
