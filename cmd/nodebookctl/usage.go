package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsageCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show or reset the generated card count",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show how many cards have been generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			usage := lib.Usage(cmd.Context())
			if a.jsonOut {
				return a.printJSON(cmd.OutOrStdout(), usage)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d cards generated, %d remaining\n", usage.Generated, usage.Limit, usage.Remaining)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset the generated card count to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			lib.ResetUsage(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Usage reset")
			return nil
		},
	})

	return cmd
}
