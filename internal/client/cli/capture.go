package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) Shoot(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: shoot <path-to-image>")
		return nil
	}

	// Copy into app storage first so the uri stays valid after the source
	// is gone. A capture failure is a one-shot notice; no record is made.
	stored, err := a.store.Save(args[0])
	if err != nil {
		fmt.Printf("Capture failed: %v\n", err)
		return err
	}

	a.session.AddShot(stored)
	fmt.Printf("Shot saved: %s (%d picked)\n", stored, a.session.PickedCount())
	return nil
}

func (a *App) Shots(ctx context.Context) error {
	shots := a.session.Shots()
	if len(shots) == 0 {
		fmt.Println("No shots in this session.")
		return nil
	}

	picked := make(map[string]bool)
	for _, u := range a.session.Picked() {
		picked[u] = true
	}

	headers := []string{"#", "", "Shot"}
	var rows [][]string
	for i, u := range shots {
		mark := ""
		if picked[u] {
			mark = "✓"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), mark, u})
	}
	fmt.Println(renderTable(headers, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
	return nil
}

func (a *App) Pick(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("Usage: pick <shot-number>")
		return nil
	}

	n, err := strconv.Atoi(args[0])
	shots := a.session.Shots()
	if err != nil || n < 1 || n > len(shots) {
		fmt.Printf("No shot %q (have %d)\n", args[0], len(shots))
		return nil
	}

	if a.session.Toggle(shots[n-1]) {
		fmt.Printf("Picked shot %d\n", n)
	} else {
		fmt.Printf("Unpicked shot %d\n", n)
	}
	return nil
}

func (a *App) Submit(ctx context.Context) error {
	picked := a.session.Picked()
	if len(picked) == 0 {
		fmt.Println("Nothing picked; use 'shoot' or 'pick' first.")
		return nil
	}

	folder := a.targetFolder()
	ids := a.controller.SubmitBatch(folder, picked)

	// Leaving the capture flow resets the working set; the submissions
	// already in flight keep resolving into the ledger on their own.
	a.session.Reset()

	fmt.Printf("Submitted %d image(s) to %q; they will appear as pending until processed.\n", len(ids), folder)
	return nil
}

func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: import <path-to-image> [more paths...]")
		return nil
	}

	folder := a.targetFolder()
	imported := 0
	for _, path := range args {
		stored, err := a.store.Save(path)
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", path, err)
			continue
		}
		q := a.ledger.RegisterFromCapture(folder, stored, "")
		imported++
		fmt.Printf("Imported %s as %s\n", path, q.ID)
	}

	fmt.Printf("Imported %d image(s) into %q\n", imported, folder)
	return nil
}
