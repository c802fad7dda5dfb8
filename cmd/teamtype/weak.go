package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notjagan/teamtype/pkg/analysis"
	"github.com/notjagan/teamtype/pkg/model"
	"github.com/notjagan/teamtype/pkg/team"
	"github.com/notjagan/teamtype/pkg/typechart"
)

func weakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weak <slot>",
		Short: "Show the defensive type chart of one Pokémon or type combination",
		Args:  cobra.ExactArgs(1),
		RunE:  runWeak,
	}
}

func runWeak(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	slot, err := team.ParseSlot(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dex, closeDex, err := openDex(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDex()

	entry, err := slot.Resolve(ctx, dex)
	if err != nil {
		return err
	}

	eff, err := analysis.Defending(entry)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, entry)
	groups := eff.ByLevel()
	for _, lvl := range typechart.Levels {
		types := groups[lvl]
		if len(types) == 0 || lvl == typechart.NormalEffective {
			continue
		}
		names := make([]string, len(types))
		for i, typ := range types {
			names[i] = typ.String()
		}
		fmt.Fprintf(out, "%5s: %s\n", lvl, strings.Join(names, ", "))
	}

	if mdl, ok := dex.(*model.Model); ok && slot.Pokemon != "" {
		notes, err := mdl.AbilityNotes(ctx, slot.Pokemon)
		if err != nil {
			return err
		}
		for _, note := range notes {
			fmt.Fprintf(out, "ability: %s\n", note)
		}
	}
	return nil
}
