package model

import (
	"context"
	"fmt"

	"github.com/notjagan/teamtype/pkg/typechart"
)

type Pokemon struct {
	model *Model

	ID        int    `db:"id"`
	Name      string `db:"name"`
	SpeciesID int    `db:"pokemon_species_id"`

	combo           *TypeCombo
	abilities       []PokemonAbility
	abilitiesLoaded bool
}

func (pokemon *Pokemon) LocalizedName(ctx context.Context) (string, error) {
	return pokemon.model.localizedPokemonName(ctx, pokemon)
}

func (pokemon *Pokemon) TypeCombo(ctx context.Context) (*TypeCombo, error) {
	if pokemon.combo == nil {
		combo, err := pokemon.model.pokemonTypeCombo(ctx, pokemon)
		if err != nil {
			return nil, fmt.Errorf("error while getting types for pokemon: %w", err)
		}
		pokemon.combo = combo
	}

	return pokemon.combo, nil
}

func (pokemon *Pokemon) Abilities(ctx context.Context) ([]PokemonAbility, error) {
	if !pokemon.abilitiesLoaded {
		abilities, err := pokemon.model.pokemonAbilities(ctx, pokemon)
		if err != nil {
			return nil, fmt.Errorf("error while getting abilities for pokemon: %w", err)
		}
		pokemon.abilities = abilities
		pokemon.abilitiesLoaded = true
	}

	return pokemon.abilities, nil
}

// GuaranteedImmunities returns the types the Pokemon is immune to whichever of
// its abilities it has.
func (pokemon *Pokemon) GuaranteedImmunities(ctx context.Context) (typechart.Set, error) {
	abilities, err := pokemon.Abilities(ctx)
	if err != nil {
		return 0, err
	}
	if len(abilities) == 0 {
		return 0, nil
	}

	immune := abilities[0].Immunities()
	for i := range abilities[1:] {
		immune &= abilities[i+1].Immunities()
	}
	return immune, nil
}
