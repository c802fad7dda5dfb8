package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "teamtype",
		Short:        "Pokémon team type weakness analyzer",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "teamtype.toml", "Path to the TOML config file")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the PokeAPI sqlite dump (overrides config)")
	root.AddCommand(analyzeCmd())
	root.AddCommand(weakCmd())
	root.AddCommand(typesCmd())
	root.AddCommand(botCmd())
	root.AddCommand(mcpCmd())
	root.AddCommand(versionCmd())
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
