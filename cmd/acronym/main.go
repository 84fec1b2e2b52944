package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/choplin/acronym/internal/config"
	"github.com/choplin/acronym/internal/glossary"
	"github.com/choplin/acronym/internal/logging"
	"github.com/choplin/acronym/internal/prompt"
	"github.com/choplin/acronym/internal/store"
)

// version is set via ldflags during build
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		return reportError(stderr, err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return reportError(stderr, err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	a := &app{
		store:    store.New(cfg.FilePath, logger),
		prompter: prompt.New(stdin, stderr),
		logger:   logger,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		a.color = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			a.termWidth = width
		}
	}

	if err := a.execute(args); err != nil {
		return reportError(stderr, err)
	}
	return 0
}

func reportError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)

	var usageErr *glossary.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stderr, "Run 'acronym --help' for usage.")
		return 2
	}
	return 1
}
