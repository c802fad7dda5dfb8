package typechart

import "fmt"

// Relation describes how a defending type fares against attacking types.
type Relation struct {
	// Weak holds the attacking types that deal double damage.
	Weak Set
	// Resist holds the attacking types that deal half damage.
	Resist Set
	// Immune holds the attacking types that deal no damage.
	Immune Set
}

var chart = [Count + 1]Relation{
	Normal: {
		Weak:   NewSet(Fighting),
		Immune: NewSet(Ghost),
	},
	Fire: {
		Weak:   NewSet(Water, Rock, Ground),
		Resist: NewSet(Fire, Grass, Ice, Bug, Steel, Fairy),
	},
	Water: {
		Weak:   NewSet(Electric, Grass),
		Resist: NewSet(Fire, Water, Ice, Steel),
	},
	Electric: {
		Weak:   NewSet(Ground),
		Resist: NewSet(Electric, Flying, Steel),
	},
	Grass: {
		Weak:   NewSet(Fire, Ice, Poison, Flying, Bug),
		Resist: NewSet(Water, Electric, Grass, Ground),
	},
	Ice: {
		Weak:   NewSet(Fire, Fighting, Rock, Steel),
		Resist: NewSet(Ice),
	},
	Fighting: {
		Weak:   NewSet(Flying, Psychic, Fairy),
		Resist: NewSet(Bug, Rock, Dark),
	},
	Poison: {
		Weak:   NewSet(Ground, Psychic),
		Resist: NewSet(Grass, Fighting, Poison, Bug, Fairy),
	},
	Ground: {
		Weak:   NewSet(Water, Grass, Ice),
		Resist: NewSet(Poison, Rock),
		Immune: NewSet(Electric),
	},
	Flying: {
		Weak:   NewSet(Electric, Ice, Rock),
		Resist: NewSet(Grass, Fighting, Bug),
		Immune: NewSet(Ground),
	},
	Psychic: {
		Weak:   NewSet(Bug, Ghost, Dark),
		Resist: NewSet(Fighting, Psychic),
	},
	Bug: {
		Weak:   NewSet(Fire, Flying, Rock),
		Resist: NewSet(Grass, Fighting, Ground),
	},
	Rock: {
		Weak:   NewSet(Water, Grass, Fighting, Ground, Steel),
		Resist: NewSet(Normal, Fire, Poison, Flying),
	},
	Ghost: {
		Weak:   NewSet(Ghost, Dark),
		Resist: NewSet(Poison, Bug),
		Immune: NewSet(Normal, Fighting),
	},
	Dragon: {
		Weak:   NewSet(Ice, Dragon, Fairy),
		Resist: NewSet(Fire, Water, Electric, Grass),
	},
	Dark: {
		Weak:   NewSet(Fighting, Bug, Fairy),
		Resist: NewSet(Ghost, Dark),
		Immune: NewSet(Psychic),
	},
	Steel: {
		Weak:   NewSet(Fire, Fighting, Ground),
		Resist: NewSet(Normal, Grass, Ice, Flying, Psychic, Bug, Rock, Dragon, Steel, Fairy),
		Immune: NewSet(Poison),
	},
	Fairy: {
		Weak:   NewSet(Poison, Steel),
		Resist: NewSet(Fighting, Bug, Dark),
		Immune: NewSet(Dragon),
	},
}

// Lookup returns the defensive relation for a type.
func Lookup(typ Type) (Relation, error) {
	if !typ.IsAType() {
		return Relation{}, fmt.Errorf("no relation for %v: %w", typ, ErrUnknownType)
	}

	return chart[typ], nil
}

// Of returns the relation for a type that is already known to be valid. The
// zero Relation is returned otherwise.
func Of(typ Type) Relation {
	if !typ.IsAType() {
		return Relation{}
	}
	return chart[typ]
}
