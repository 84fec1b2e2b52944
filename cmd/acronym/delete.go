package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/choplin/acronym/internal/usecase"
)

func (a *app) newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <acronym>",
		Short: "Delete an acronym",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.glossary().Delete(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch result.Status {
			case usecase.StatusNotFound:
				fmt.Fprintln(out, a.paint("No entry found for "+result.Key, text.FgRed))
			case usecase.StatusCancelled:
				fmt.Fprintln(out, a.paint("Delete cancelled", text.FgYellow))
			default:
				fmt.Fprintf(out, "%s %s\n", a.paint("Deleted", text.FgGreen), result.Key)
			}
			return nil
		},
	}

	return cmd
}
