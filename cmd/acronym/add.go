package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/choplin/acronym/internal/usecase"
)

func (a *app) newAddCmd() *cobra.Command {
	var (
		fullName    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <acronym>",
		Short: "Add a new acronym",
		Long:  "Add a new acronym. Missing --full-name or --description values are prompted for.",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.glossary().Add(usecase.AddInput{
				Acronym:     args[0],
				FullName:    fullName,
				Description: description,
			})
			if err != nil {
				return err
			}

			switch result.Status {
			case usecase.StatusCancelled:
				fmt.Fprintln(cmd.OutOrStdout(), a.paint("Add cancelled", text.FgYellow))
			case usecase.StatusReplaced:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.paint("Replaced", text.FgGreen), result.Key)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", a.paint("Added", text.FgGreen), result.Key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name of the acronym (prompted if omitted)")
	cmd.Flags().StringVar(&description, "description", "", "Description of the acronym (prompted if omitted)")

	return cmd
}
