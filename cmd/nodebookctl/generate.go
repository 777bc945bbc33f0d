package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/nodebook-local/library"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		folder string
		topic  string
		file   string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a card set from text read from --file or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			text, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			lib, err := a.library(cmd.Context())
			if err != nil {
				return err
			}
			set, err := lib.GenerateSet(cmd.Context(), library.GenerateRequest{
				Folder: folder,
				Text:   string(text),
				Topic:  topic,
			})
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.printJSON(cmd.OutOrStdout(), set)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d cards as %q in %q (id %s)\n", set.CardCount(), set.Title, set.Folder, set.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "folder to save the set in (default folder when empty)")
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "topic used to title the set")
	cmd.Flags().StringVar(&file, "file", "", "read text from this file instead of stdin")
	return cmd
}
