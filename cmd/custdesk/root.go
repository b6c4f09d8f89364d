package main

import (
	"context"
	"os"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"custdesk/internal/app"
)

var rootCmd = &cobra.Command{
	Use:           "custdesk",
	Short:         "Customer information entry tool",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		zlog.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(importCmd)
}

func openApp(ctx context.Context) (*app.App, error) {
	path := os.Getenv("CUSTDESK_DB")
	if path == "" {
		path = app.DefaultDBPath
	}
	db, err := app.Open(path)
	if err != nil {
		return nil, err
	}
	a, err := app.NewApp(db)
	if err != nil {
		return nil, err
	}
	if err := a.InitSchema(ctx); err != nil {
		return nil, err
	}
	return a, nil
}
