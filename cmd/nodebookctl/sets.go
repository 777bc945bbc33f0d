package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/nodebook-local/models"
)

func newSetsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List, show, rename and delete card sets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <folder>",
		Short: "List the sets of a folder, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			sets := lib.Sets(cmd.Context(), args[0])
			if a.jsonOut {
				if sets == nil {
					sets = []models.CardSet{}
				}
				return a.printJSON(cmd.OutOrStdout(), sets)
			}
			rows := make([][]string, 0, len(sets))
			for _, s := range sets {
				rows = append(rows, []string{
					s.ID.String(),
					s.Title,
					strconv.Itoa(s.CardCount()),
					s.CreatedAt.Local().Format(time.DateTime),
				})
			}
			return a.printTable(cmd.OutOrStdout(), []string{"ID", "Title", "Cards", "Created"}, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <set-id>",
		Short: "Show the cards of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			set, ok := lib.Set(cmd.Context(), models.SetID(args[0]))
			if !ok {
				return fmt.Errorf("set %s not found", args[0])
			}
			if a.jsonOut {
				return a.printJSON(cmd.OutOrStdout(), set)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", set.Title, set.Folder)
			rows := make([][]string, 0, len(set.Cards))
			for _, c := range set.Cards {
				rows = append(rows, []string{c.Term, c.Definition})
			}
			return a.printTable(cmd.OutOrStdout(), []string{"Term", "Definition"}, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <folder> <set-id> <title>",
		Short: "Retitle a set",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			set, err := lib.RenameSet(cmd.Context(), args[0], models.SetID(args[1]), args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s is now %q\n", set.ID, set.Title)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <folder> <set-id>",
		Short: "Delete a set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			lib.DeleteSet(cmd.Context(), args[0], models.SetID(args[1]))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted set %s\n", args[1])
			return nil
		},
	})

	return cmd
}
