// Package cli implements the interactive capture client: a small REPL over
// the folder directory, the question ledger and the capture-submit
// controller.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"testly/internal/client/capture"
	"testly/internal/client/config"
	"testly/internal/client/directory"
	"testly/internal/client/ledger"
	"testly/internal/client/submit"
	"testly/internal/logging"
)

// App wires the client core together and carries the REPL's transient
// state. The directory, ledger and controller are constructed once here and
// passed by reference; nothing reaches them ambiently.
type App struct {
	config     *config.Config
	logger     logging.Logger
	dir        *directory.Directory
	ledger     *ledger.Ledger
	store      *capture.Store
	session    *capture.Session
	controller *submit.Controller
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := capture.NewStore(c.PhotosDir)
	if err != nil {
		return nil, err
	}

	led := ledger.New()
	processor := submit.NewHTTPProcessor(c.ProcessorBaseURL, c.SubmitTimeout)

	return &App{
		config:     c,
		logger:     logger,
		dir:        directory.New(c.SeedFolders...),
		ledger:     led,
		store:      store,
		session:    capture.NewSession(),
		controller: submit.NewController(led, processor, logger),
	}, nil
}

// status renders the prompt suffix: the active folder plus the number of
// picked shots, e.g. "(Fizik, 2 picked)".
func (a *App) status() string {
	s := a.targetFolder()
	if n := a.session.PickedCount(); n > 0 {
		s = fmt.Sprintf("%s, %d picked", s, n)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// targetFolder is where captures land: the selected folder, or "Genel" when
// nothing is selected.
func (a *App) targetFolder() string {
	if sel, ok := a.dir.Selected(); ok && sel != "" {
		return sel
	}
	return "Genel"
}

func (a *App) Run(ctx context.Context) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Welcome to testly (type 'help' for commands)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)

	// Detached submissions keep their contract: they run to completion even
	// though the capture screen is gone.
	a.controller.Wait()
}
