package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/andrewpaige1/nodebook-local/config"
	"github.com/andrewpaige1/nodebook-local/library"
	"github.com/andrewpaige1/nodebook-local/utils"
)

// app carries what every command needs. lib is opened lazily so that
// commands like token work without a storage backend.
type app struct {
	env    config.Environment
	logger zerolog.Logger
	lib    *library.Library

	backend  string
	path     string
	jsonOut  bool
	logLevel string
}

func (a *app) load() error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	if a.backend != "" {
		env.StorageBackend = a.backend
	}
	if a.path != "" {
		env.StoragePath = a.path
	}
	if a.logLevel != "" {
		env.LogLevel = a.logLevel
	}
	a.env = env
	a.logger = utils.NewLogger(env.LogLevel, env.LogFormat)
	return nil
}

func (a *app) library(ctx context.Context) (*library.Library, error) {
	if a.lib != nil {
		return a.lib, nil
	}
	lib, err := library.Open(ctx, a.env, a.logger)
	if err != nil {
		return nil, err
	}
	a.lib = lib
	return lib, nil
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "nodebookctl",
		Short:         "Manage the local flashcard library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.lib != nil {
				return nil
			}
			return a.load()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.backend, "backend", "", "storage backend: file, sqlite, postgres or memory (overrides STORAGE_BACKEND)")
	flags.StringVar(&a.path, "path", "", "storage directory (overrides STORAGE_PATH)")
	flags.BoolVar(&a.jsonOut, "json", false, "print JSON instead of tables")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	cmd.AddCommand(
		newFoldersCmd(a),
		newSetsCmd(a),
		newGenerateCmd(a),
		newUsageCmd(a),
		newClearCmd(a),
		newTokenCmd(a),
	)
	return cmd
}

func (a *app) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) printTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w)
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}
