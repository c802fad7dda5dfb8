package main

import (
	"github.com/spf13/cobra"

	"github.com/notjagan/teamtype/pkg/bot"
)

func botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Host the Discord bot",
		Args:  cobra.NoArgs,
		RunE:  runBot,
	}
}

func runBot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireBot(); err != nil {
		return err
	}

	b, err := bot.New(ctx, cfg)
	if err != nil {
		return err
	}

	return b.Run(ctx)
}
