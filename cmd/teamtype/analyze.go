package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notjagan/teamtype/pkg/team"
)

func analyzeCmd() *cobra.Command {
	var (
		file   string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "analyze [slot...]",
		Short: "Analyze a team of up to six Pokémon or type combinations",
		Long: `Analyze a team of up to six Pokémon or type combinations.

Each slot is written as Type[/Type] or @pokemon, optionally followed by
+ability and !Type[,Type...] for extra immunities:

  teamtype analyze fire/flying @gengar+levitate "Water!Electric"`,
		Args: cobra.MaximumNArgs(team.MaxSize),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, file, asJSON)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML roster file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, file string, asJSON bool) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dex, closeDex, err := openDex(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDex()

	builder := team.NewBuilder(dex)
	if file != "" {
		slots, err := team.LoadFile(file)
		if err != nil {
			return err
		}
		for _, slot := range slots {
			if err := builder.Add(slot); err != nil {
				return fmt.Errorf("could not add %v from %s: %w", slot, file, err)
			}
		}
	}
	for _, arg := range args {
		if err := builder.AddString(arg); err != nil {
			return err
		}
	}

	report, err := team.AnalyzeBuilder(ctx, builder)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report.Summary())
	}
	return report.Format(cmd.OutOrStdout())
}
