package model

import (
	"context"

	"github.com/notjagan/teamtype/pkg/analysis"
	"github.com/notjagan/teamtype/pkg/typechart"
)

// Type is a row of pokemon_v2_type.
type Type struct {
	model *Model

	ID   int    `db:"id"`
	Name string `db:"name"`
}

func (typ *Type) LocalizedName(ctx context.Context) (string, error) {
	return typ.model.localizedTypeName(ctx, typ)
}

func (typ *Type) Chart() (typechart.Type, error) {
	return typechart.FromID(typ.ID)
}

type TypeCombo struct {
	Type1 typechart.Type
	Type2 typechart.Type
}

func newTypeCombo(ids []int) (*TypeCombo, error) {
	var combo TypeCombo
	var err error

	combo.Type1, err = typechart.FromID(ids[0])
	if err != nil {
		return nil, err
	}

	if len(ids) > 1 {
		combo.Type2, err = typechart.FromID(ids[1])
		if err != nil {
			return nil, err
		}
	}

	return &combo, nil
}

func (combo *TypeCombo) Entry() analysis.Entry {
	return analysis.Entry{Primary: combo.Type1, Secondary: combo.Type2}
}
