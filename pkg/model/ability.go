package model

import (
	"context"

	"github.com/notjagan/teamtype/pkg/analysis"
	"github.com/notjagan/teamtype/pkg/typechart"
)

type PokemonAbility struct {
	model *Model

	ID       int    `db:"id"`
	Name     string `db:"name"`
	IsHidden bool   `db:"is_hidden"`
}

func (ability *PokemonAbility) LocalizedName(ctx context.Context) (string, error) {
	return ability.model.localizedAbilityName(ctx, ability)
}

func (ability *PokemonAbility) Immunities() typechart.Set {
	return analysis.AbilityImmunities(ability.Name)
}
