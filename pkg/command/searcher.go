package command

import (
	"context"

	"github.com/notjagan/teamtype/pkg/model"
)

type searcher[T model.Localizer] interface {
	Search(context.Context) ([]T, error)
	Value(T) any
}

type pokemonSearcher struct {
	model  *model.Model
	prefix string
	limit  int
}

func (s pokemonSearcher) Search(ctx context.Context) ([]*model.Pokemon, error) {
	return s.model.SearchPokemon(ctx, s.prefix, s.limit)
}

func (pokemonSearcher) Value(pokemon *model.Pokemon) any {
	return pokemon.Name
}

type typeSearcher struct {
	model  *model.Model
	prefix string
	limit  int
}

func (s typeSearcher) Search(ctx context.Context) ([]*model.Type, error) {
	return s.model.SearchTypes(ctx, s.prefix, s.limit)
}

func (typeSearcher) Value(typ *model.Type) any {
	chart, err := typ.Chart()
	if err != nil {
		return typ.Name
	}
	return chart.String()
}

type languageSearcher struct {
	model *model.Model
}

func (s languageSearcher) Search(ctx context.Context) ([]*model.Language, error) {
	langs, err := s.model.AllLanguages(ctx)
	if err != nil {
		return nil, err
	}

	ptrs := make([]*model.Language, len(langs))
	for i := range langs {
		ptrs[i] = &langs[i]
	}
	return ptrs, nil
}

func (languageSearcher) Value(lang *model.Language) any {
	return string(lang.ISO639)
}
