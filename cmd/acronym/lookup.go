package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/choplin/acronym/internal/glossary"
)

func (a *app) runLookup(args []string) error {
	if len(args) > 1 {
		return glossary.NewUsageError("unexpected extra arguments: %v", args[1:])
	}
	token := args[0]

	item, ok, err := a.glossary().Lookup(token)
	if err != nil {
		return err
	}
	if !ok {
		return glossary.NewUsageError("unknown command %q", token)
	}

	fmt.Fprintln(a.stdout, a.paint(item.Key, text.Bold, text.FgCyan))
	fmt.Fprintf(a.stdout, "%s %s\n", a.paint("Full Name:", text.Bold), item.Entry.FullName)
	fmt.Fprintf(a.stdout, "%s %s\n", a.paint("Description:", text.Bold), item.Entry.Description)
	return nil
}
