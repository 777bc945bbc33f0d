package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every card set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete every set without --yes")
			}
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			lib.ClearAll(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted every set")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting every set")
	return cmd
}
