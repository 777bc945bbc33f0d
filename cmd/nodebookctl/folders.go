package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFoldersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "List, create, rename and delete folders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List folders with their set and card counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			folders := lib.Folders(cmd.Context())
			if a.jsonOut {
				return a.printJSON(cmd.OutOrStdout(), folders)
			}
			rows := make([][]string, 0, len(folders))
			for _, f := range folders {
				rows = append(rows, []string{f.Name, strconv.Itoa(f.Sets), strconv.Itoa(f.Cards)})
			}
			return a.printTable(cmd.OutOrStdout(), []string{"Folder", "Sets", "Cards"}, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create [name]",
		Short: "Create a folder, picking the next default name when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			created, err := lib.CreateFolder(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created folder %q\n", created)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <folder> <new-name>",
		Short: "Rename a folder and move its sets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			name, renamed, err := lib.RenameFolder(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if !renamed {
				fmt.Fprintf(cmd.OutOrStdout(), "Folder %q unchanged\n", name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed folder %q to %q\n", args[0], name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <folder>",
		Short: "Delete a folder and every set in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			lib.DeleteFolder(cmd.Context(), args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted folder %q\n", args[0])
			return nil
		},
	})

	return cmd
}
