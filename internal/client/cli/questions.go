package cli

import (
	"context"
	"fmt"
	"strings"

	"testly/internal/client/ledger"
	"testly/internal/client/models"
)

func patchAnswer(a models.Answer) ledger.Patch {
	return ledger.Patch{Answer: &a}
}

func (a *App) Questions(ctx context.Context, args []string) error {
	folder := a.targetFolder()
	if len(args) > 0 {
		folder = strings.Join(args, " ")
	}

	qs := a.ledger.Questions(folder)
	if len(qs) == 0 {
		fmt.Printf("No questions in %q yet.\n", folder)
		return nil
	}

	headers := []string{"ID", "Status", "Answer", "Image"}
	var rows [][]string
	for _, q := range qs {
		rows = append(rows, []string{shortID(q.ID), string(q.Status), string(q.Answer), q.URI})
	}
	fmt.Println(renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft}))
	return nil
}

func (a *App) Answer(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Println("Usage: answer <id> <A|B|C|D|E>")
		return nil
	}

	choice, err := models.ParseAnswer(args[1])
	if err != nil {
		fmt.Printf("Invalid answer %q; expected A, B, C, D or E\n", args[1])
		return err
	}

	folder := a.targetFolder()
	q, ok := a.findQuestion(folder, args[0])
	if !ok {
		fmt.Printf("No question %q in %q\n", args[0], folder)
		return nil
	}

	a.ledger.Update(folder, q.ID, patchAnswer(choice))
	fmt.Printf("Answer %s recorded for %s\n", choice, shortID(q.ID))
	return nil
}

func (a *App) Retry(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: retry <id>")
		return nil
	}

	folder := a.targetFolder()
	q, ok := a.findQuestion(folder, args[0])
	if !ok {
		fmt.Printf("No question %q in %q\n", args[0], folder)
		return nil
	}

	if err := a.controller.Retry(folder, q.ID); err != nil {
		fmt.Printf("Cannot retry %s: %v\n", shortID(q.ID), err)
		return err
	}
	fmt.Printf("Resubmitted %s\n", shortID(q.ID))
	return nil
}

// findQuestion resolves a full id or a unique prefix within the folder.
func (a *App) findQuestion(folder, idOrPrefix string) (models.Question, bool) {
	if q, ok := a.ledger.Find(folder, idOrPrefix); ok {
		return q, true
	}

	var match models.Question
	found := 0
	for _, q := range a.ledger.Questions(folder) {
		if strings.HasPrefix(q.ID, idOrPrefix) {
			match = q
			found++
		}
	}
	if found == 1 {
		return match, true
	}
	return models.Question{}, false
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
