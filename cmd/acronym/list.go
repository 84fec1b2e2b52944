package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/choplin/acronym/internal/usecase"
)

func (a *app) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all acronyms",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.glossary().List()
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), a.paint("No acronyms found", text.FgYellow))
				return nil
			}

			a.outputTable(cmd, items)
			return nil
		},
	}

	return cmd
}

// columnWidths holds the widths content is fitted to. Zero means unlimited.
type columnWidths struct {
	fullName    int
	description int
}

// calculateColumnWidths keeps the Acronym column on a single line and
// shares the remaining terminal width between Full Name and Description.
func calculateColumnWidths(termWidth int, items []usecase.Item) columnWidths {
	if termWidth <= 0 {
		return columnWidths{}
	}

	// Reserve space for table borders and padding (roughly 3 chars per column)
	availableWidth := termWidth - 3*3 - 1

	keyWidth := runewidth.StringWidth("Acronym")
	fullNameWidth := runewidth.StringWidth("Full Name")
	for _, item := range items {
		if w := runewidth.StringWidth(item.Key); w > keyWidth {
			keyWidth = w
		}
		if w := runewidth.StringWidth(item.Entry.FullName); w > fullNameWidth {
			fullNameWidth = w
		}
	}

	// Full Name may take at most 40% of what the key leaves over.
	if limit := (availableWidth - keyWidth) * 2 / 5; fullNameWidth > limit {
		fullNameWidth = limit
	}
	if fullNameWidth < 10 {
		fullNameWidth = 10
	}

	descWidth := availableWidth - keyWidth - fullNameWidth
	if descWidth < 15 {
		descWidth = 15
	}

	return columnWidths{
		fullName:    fullNameWidth,
		description: descWidth,
	}
}

// wrapString wraps a string to fit within maxWidth, accounting for multi-byte characters
func wrapString(s string, maxWidth int) string {
	s = strings.TrimSpace(s)
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	var result strings.Builder
	var currentLine strings.Builder
	currentWidth := 0

	for _, r := range s {
		charWidth := runewidth.RuneWidth(r)

		if currentWidth+charWidth > maxWidth && currentWidth > 0 {
			result.WriteString(currentLine.String())
			result.WriteString("\n")
			currentLine.Reset()
			currentWidth = 0
		}

		currentLine.WriteRune(r)
		currentWidth += charWidth
	}

	if currentLine.Len() > 0 {
		result.WriteString(currentLine.String())
	}

	return result.String()
}

func (a *app) outputTable(cmd *cobra.Command, items []usecase.Item) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.SetTitle("Acronyms")
	if a.color {
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Colors: text.Colors{text.FgCyan}},
			{Number: 2, Colors: text.Colors{text.Bold}},
		})
	}

	widths := calculateColumnWidths(a.termWidth, items)

	// Content is wrapped and truncated before it reaches the table because
	// go-pretty's WidthMax does not handle multi-byte characters correctly.
	t.AppendHeader(table.Row{"Acronym", "Full Name", "Description"})

	for _, item := range items {
		description := item.Entry.Description
		if widths.description > 0 {
			description = runewidth.Truncate(description, widths.description, "...")
		}

		t.AppendRow(table.Row{
			item.Key,
			wrapString(item.Entry.FullName, widths.fullName),
			description,
		})
	}

	t.Render()
}
