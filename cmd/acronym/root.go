package main

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/choplin/acronym/internal/glossary"
	"github.com/choplin/acronym/internal/mcp"
	"github.com/choplin/acronym/internal/prompt"
	"github.com/choplin/acronym/internal/store"
	"github.com/choplin/acronym/internal/usecase"
)

// reservedCommands are never treated as lookup tokens, even when an acronym
// with the same spelling is stored.
var reservedCommands = map[string]bool{
	"add":    true,
	"delete": true,
	"list":   true,
}

type app struct {
	store    *store.FileStore
	prompter prompt.Prompter
	logger   *zap.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	color     bool
	termWidth int
}

func (a *app) glossary() *usecase.Glossary {
	return usecase.NewGlossary(a.store, a.prompter, a.logger)
}

// execute dispatches args in two stages: reserved subcommand names and flags
// go to the cobra command tree, anything else is looked up as an acronym.
func (a *app) execute(args []string) error {
	if len(args) > 0 && !reservedCommands[args[0]] && !strings.HasPrefix(args[0], "-") {
		return a.runLookup(args)
	}

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	root := a.newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func (a *app) newRootCmd() *cobra.Command {
	var serveMCP bool

	cmd := &cobra.Command{
		Use:     "acronym [ACRONYM]",
		Short:   "Acronym CLI tool",
		Long:    "acronym keeps a personal glossary of acronyms with their full names and descriptions.",
		Version: version,
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if serveMCP {
				server := mcp.NewServer(a.store, a.logger, version)
				return server.Run(cmd.Context())
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.runLookup(args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return glossary.NewUsageError("%v", err)
	})

	cmd.Flags().BoolVar(&serveMCP, "mcp", false, "Serve the glossary over the Model Context Protocol on stdio")

	cmd.AddCommand(a.newAddCmd())
	cmd.AddCommand(a.newDeleteCmd())
	cmd.AddCommand(a.newListCmd())

	return cmd
}

// usageArgs reports positional argument mistakes as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return glossary.NewUsageError("%v", err)
		}
		return nil
	}
}

func (a *app) paint(s string, colors ...text.Color) string {
	if !a.color {
		return s
	}
	return text.Colors(colors).Sprint(s)
}
