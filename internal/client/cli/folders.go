package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Folders(ctx context.Context) error {
	sel, _ := a.dir.Selected()

	headers := []string{"", "Folder", "Questions"}
	var rows [][]string
	for _, f := range a.dir.Folders() {
		mark := ""
		if f == sel {
			mark = "*"
		}
		rows = append(rows, []string{mark, f, fmt.Sprintf("%d", len(a.ledger.Questions(f)))})
	}

	fmt.Println(renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
	return nil
}

func (a *App) MkDir(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: mkdir <name>")
		return nil
	}

	name := strings.Join(args, " ")
	before := len(a.dir.Folders())
	a.dir.Add(name)

	if len(a.dir.Folders()) == before {
		fmt.Printf("Folder %q already exists, selected it\n", strings.TrimSpace(name))
	} else {
		fmt.Printf("Created and selected %q\n", strings.TrimSpace(name))
	}
	return nil
}

func (a *App) Select(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: select <name>")
		return nil
	}

	name := strings.Join(args, " ")
	a.dir.SetSelected(name)
	if !a.dir.Contains(name) {
		fmt.Printf("Selected %q (not created yet)\n", name)
	} else {
		fmt.Printf("Selected %q\n", name)
	}
	return nil
}
