package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/notjagan/teamtype/pkg/analysis"
)

// Model is a read-only view of a PokeAPI sqlite dump.
type Model struct {
	db *sqlx.DB

	language atomic.Pointer[Language]
}

func New(ctx context.Context, dbPath string) (*Model, error) {
	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to read from database: %w", err)
	}
	return &Model{db: db}, nil
}

func (m *Model) Close() error {
	return m.db.Close()
}

// Localizer is a dex resource with a name in the model's current language.
type Localizer interface {
	LocalizedName(context.Context) (string, error)
}

var (
	ErrUnsetLanguage = errors.New("model language is nil")
	ErrNoPokemon     = errors.New("no matching pokemon")
)

func (m *Model) languageByLocalizationCode(ctx context.Context, code LocalizationCode) (*Language, error) {
	lang := Language{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, iso639
		FROM pokemon_v2_language
		WHERE iso639 = ?
	`, code).StructScan(&lang)
	if err != nil {
		return nil, fmt.Errorf("localization code %q not found: %w", code, err)
	}
	return &lang, nil
}

func (m *Model) SetLanguageByLocalizationCode(ctx context.Context, code LocalizationCode) error {
	lang, err := m.languageByLocalizationCode(ctx, code)
	if err != nil {
		return fmt.Errorf("error while getting language: %w", err)
	}
	m.language.Store(lang)

	return nil
}

// Language is the language localized names are read in. It is nil until one
// is set.
func (m *Model) Language() *Language {
	return m.language.Load()
}

// pokemonIdentifier converts a display name such as "Mr Mime" into the
// PokeAPI identifier "mr-mime".
func pokemonIdentifier(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, ".", "")
	return strings.Join(strings.Fields(name), "-")
}

func (m *Model) PokemonByName(ctx context.Context, name string) (*Pokemon, error) {
	pokemon := Pokemon{model: m}
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT id, name, pokemon_species_id
		FROM pokemon_v2_pokemon
		WHERE name = ?
	`, pokemonIdentifier(name)).StructScan(&pokemon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pokemon %q: %w", name, ErrNoPokemon)
	} else if err != nil {
		return nil, fmt.Errorf("error while querying pokemon %q: %w", name, err)
	}

	return &pokemon, nil
}

func (m *Model) localizedPokemonName(ctx context.Context, pokemon *Pokemon) (string, error) {
	lang := m.Language()
	if lang == nil {
		return "", ErrUnsetLanguage
	}

	var name string
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT name
		FROM pokemon_v2_pokemonspeciesname
		WHERE pokemon_species_id = ? AND language_id = ?
	`, pokemon.SpeciesID, lang.ID).Scan(&name)
	if err != nil {
		return "", fmt.Errorf(
			"could not find localized name for pokemon %q for language with code %q: %w",
			pokemon.Name,
			lang.ISO639,
			err,
		)
	}

	return name, nil
}

func (m *Model) localizedLanguageName(ctx context.Context, target *Language) (string, error) {
	lang := m.Language()
	if lang == nil {
		return "", ErrUnsetLanguage
	}

	var name string
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT name
		FROM pokemon_v2_languagename
		WHERE language_id = ? AND local_language_id = ?
	`, target.ID, lang.ID).Scan(&name)
	if err != nil {
		return "", fmt.Errorf("error while getting localized name for language with code %q: %w", target.ISO639, err)
	}

	return name, nil
}

func (m *Model) pokemonTypeCombo(ctx context.Context, pokemon *Pokemon) (*TypeCombo, error) {
	var ids []int
	err := m.db.SelectContext(ctx, &ids,
		/* sql */ `
		SELECT type_id
		FROM pokemon_v2_pokemontype
		WHERE pokemon_id = ?
		ORDER BY slot ASC
	`, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting types for pokemon %q: %w", pokemon.Name, err)
	}

	if len(ids) == 0 || len(ids) > 2 {
		return nil, fmt.Errorf("pokemon %q has %d types", pokemon.Name, len(ids))
	}

	return newTypeCombo(ids)
}

func (m *Model) pokemonAbilities(ctx context.Context, pokemon *Pokemon) ([]PokemonAbility, error) {
	var abilities []PokemonAbility
	err := m.db.SelectContext(ctx, &abilities,
		/* sql */ `
		SELECT a.id, a.name, pa.is_hidden
		FROM pokemon_v2_pokemonability pa
		JOIN pokemon_v2_ability a
			ON pa.ability_id = a.id
		WHERE pa.pokemon_id = ?
		ORDER BY pa.slot ASC
	`, pokemon.ID)
	if err != nil {
		return nil, fmt.Errorf("error while getting abilities for pokemon %q: %w", pokemon.Name, err)
	}

	for i := range abilities {
		abilities[i].model = m
	}

	return abilities, nil
}

func (m *Model) localizedAbilityName(ctx context.Context, ability *PokemonAbility) (string, error) {
	lang := m.Language()
	if lang == nil {
		return "", ErrUnsetLanguage
	}

	var name string
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT name
		FROM pokemon_v2_abilityname
		WHERE ability_id = ? AND language_id = ?
	`, ability.ID, lang.ID).Scan(&name)
	if err != nil {
		return "", fmt.Errorf(
			"could not find localized name for ability %q for language with code %q: %w",
			ability.Name,
			lang.ISO639,
			err,
		)
	}

	return name, nil
}

func (m *Model) localizedTypeName(ctx context.Context, typ *Type) (string, error) {
	lang := m.Language()
	if lang == nil {
		return "", ErrUnsetLanguage
	}

	var name string
	err := m.db.QueryRowxContext(ctx,
		/* sql */ `
		SELECT name
		FROM pokemon_v2_typename
		WHERE type_id = ? AND language_id = ?
	`, typ.ID, lang.ID).Scan(&name)
	if err != nil {
		return "", fmt.Errorf(
			"could not find localized name for type %q for language with code %q: %w",
			typ.Name,
			lang.ISO639,
			err,
		)
	}

	return name, nil
}

func (m *Model) AllLanguages(ctx context.Context) ([]Language, error) {
	langs := make([]Language, len(AllLocalizationCodes))

	for i, code := range AllLocalizationCodes {
		lang, err := m.languageByLocalizationCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("error while getting all languages: %w", err)
		}
		langs[i] = *lang
	}

	return langs, nil
}

func (m *Model) SearchPokemon(ctx context.Context, prefix string, limit int) ([]*Pokemon, error) {
	lang := m.Language()
	if lang == nil {
		return nil, ErrUnsetLanguage
	}

	pattern := fmt.Sprintf("%s%%", prefix)
	var ps []*Pokemon
	err := m.db.SelectContext(ctx, &ps,
		/* sql */ `
		SELECT MIN(p.id) as id, p.name, p.pokemon_species_id
		FROM pokemon_v2_pokemon p
		JOIN pokemon_v2_pokemonspeciesname n
			ON p.pokemon_species_id = n.pokemon_species_id
		WHERE n.name LIKE ? AND n.language_id = ?
		GROUP BY p.pokemon_species_id
		ORDER BY n.name ASC
		LIMIT ?
	`, pattern, lang.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("error while getting pokemon with prefix: %w", err)
	}

	for i := range ps {
		ps[i].model = m
	}

	return ps, nil
}

// SearchTypes lists the chart types whose localized name starts with prefix.
func (m *Model) SearchTypes(ctx context.Context, prefix string, limit int) ([]*Type, error) {
	lang := m.Language()
	if lang == nil {
		return nil, ErrUnsetLanguage
	}

	pattern := fmt.Sprintf("%s%%", prefix)
	var types []*Type
	err := m.db.SelectContext(ctx, &types,
		/* sql */ `
		SELECT t.id, t.name
		FROM pokemon_v2_type t
		JOIN pokemon_v2_typename n
			ON t.id = n.type_id
		WHERE n.name LIKE ? AND n.language_id = ? AND t.id < 10000
		ORDER BY n.name ASC
		LIMIT ?
	`, pattern, lang.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("error while getting types with prefix: %w", err)
	}

	for i := range types {
		types[i].model = m
	}

	return types, nil
}

// Entry resolves a Pokemon into a roster entry, including any immunity that
// every one of its abilities grants.
func (m *Model) Entry(ctx context.Context, name string) (analysis.Entry, error) {
	pokemon, err := m.PokemonByName(ctx, name)
	if err != nil {
		return analysis.Entry{}, err
	}

	combo, err := pokemon.TypeCombo(ctx)
	if err != nil {
		return analysis.Entry{}, fmt.Errorf("could not get type combo for pokemon: %w", err)
	}

	immune, err := pokemon.GuaranteedImmunities(ctx)
	if err != nil {
		return analysis.Entry{}, fmt.Errorf("could not get immunities for pokemon: %w", err)
	}

	entry := combo.Entry()
	entry.Immunities = immune
	return entry, nil
}

// AbilityNotes describes each ability of a Pokemon in the current language,
// marking hidden abilities and the types each one makes it immune to.
func (m *Model) AbilityNotes(ctx context.Context, name string) ([]string, error) {
	pokemon, err := m.PokemonByName(ctx, name)
	if err != nil {
		return nil, err
	}

	abilities, err := pokemon.Abilities(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]string, len(abilities))
	for i := range abilities {
		ability := &abilities[i]
		note, err := ability.LocalizedName(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not describe abilities of pokemon %q: %w", pokemon.Name, err)
		}
		if ability.IsHidden {
			note += " (hidden)"
		}
		if immune := ability.Immunities(); immune.Len() > 0 {
			note += fmt.Sprintf(" immune to %v", immune)
		}
		notes[i] = note
	}

	return notes, nil
}
