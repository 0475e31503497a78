package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	Folders(ctx context.Context) error
	MkDir(ctx context.Context, args []string) error
	Select(ctx context.Context, args []string) error
	Shoot(ctx context.Context, args []string) error
	Shots(ctx context.Context) error
	Pick(ctx context.Context, args []string) error
	Submit(ctx context.Context) error
	Import(ctx context.Context, args []string) error
	Questions(ctx context.Context, args []string) error
	Answer(ctx context.Context, args []string) error
	Retry(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the testly client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help                 — show available commands
//	folders              — list folders, selected one marked
//	mkdir <name>         — create a folder and select it
//	select <name>        — select a folder
//	shoot <path>         — take a picture (copy into app storage, pick it)
//	shots                — show the capture strip with pick marks
//	pick <n>             — toggle the n-th shot's pick mark
//	submit               — submit picked shots for processing
//	import <paths...>    — register gallery images directly as ready
//	questions [folder]   — show the folder's question records
//	answer <id> <A..E>   — record an answer choice
//	retry <id>           — resubmit a failed record
//	exit | quit          — leave the program
//
// Any errors returned by command handlers were already reported to the user
// by the handler; the loop ignores them to stay resilient and focused on
// I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("testly %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: folders, mkdir, select, shoot, shots, pick, submit, import, questions, answer, retry, exit")

		case "folders":
			_ = a.Folders(ctx)

		case "mkdir":
			_ = a.MkDir(ctx, args)

		case "select":
			_ = a.Select(ctx, args)

		case "shoot":
			_ = a.Shoot(ctx, args)

		case "shots":
			_ = a.Shots(ctx)

		case "pick":
			_ = a.Pick(ctx, args)

		case "submit":
			_ = a.Submit(ctx)

		case "import":
			_ = a.Import(ctx, args)

		case "q", "questions":
			_ = a.Questions(ctx, args)

		case "answer":
			_ = a.Answer(ctx, args)

		case "retry":
			_ = a.Retry(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
