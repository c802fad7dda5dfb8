package typechart

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:generate enumer -type=Type -json -text

// Type is one of the eighteen elemental types. The values match the type ids
// used by PokeAPI so rows read from the dex convert without a name lookup.
type Type int

const (
	Normal Type = iota + 1
	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Steel
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon
	Dark
	Fairy
)

// Count is the number of types in the chart.
const Count = int(Fairy)

var ErrUnknownType = errors.New("unknown type")

// Parse resolves a type by name, ignoring case.
func Parse(name string) (Type, error) {
	typ, err := TypeString(strings.TrimSpace(name))
	if err != nil {
		return 0, fmt.Errorf("type %q: %w", name, ErrUnknownType)
	}

	return typ, nil
}

// FromID converts a PokeAPI type id.
func FromID(id int) (Type, error) {
	typ := Type(id)
	if !typ.IsAType() {
		return 0, fmt.Errorf("type id %d: %w", id, ErrUnknownType)
	}

	return typ, nil
}

// All returns every type in id order.
func All() []Type {
	all := make([]Type, len(_TypeValues))
	copy(all, _TypeValues)
	return all
}

var chartOrder = []Type{
	Normal, Fire, Water, Electric, Grass, Ice, Fighting, Poison, Ground,
	Flying, Psychic, Bug, Rock, Ghost, Dragon, Dark, Steel, Fairy,
}

// ChartOrder returns every type in the order of the printed type chart.
func ChartOrder() []Type {
	types := make([]Type, len(chartOrder))
	copy(types, chartOrder)
	return types
}

var sorted = func() []Type {
	types := All()
	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})
	return types
}()

// Sorted returns every type ordered by name. Every tie-break in the analysis
// follows this order.
func Sorted() []Type {
	types := make([]Type, len(sorted))
	copy(types, sorted)
	return types
}
