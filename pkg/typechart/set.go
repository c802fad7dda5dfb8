package typechart

import "strings"

// Set is a bitset of types.
type Set uint32

func NewSet(types ...Type) Set {
	var s Set
	for _, typ := range types {
		s = s.With(typ)
	}
	return s
}

// invalid marks a set that was given a value outside the eighteen types.
const invalid Set = 1

func (s Set) With(typ Type) Set {
	if !typ.IsAType() {
		return s | invalid
	}
	return s | 1<<uint(typ)
}

func (s Set) Has(typ Type) bool {
	return typ.IsAType() && s&(1<<uint(typ)) != 0
}

func (s Set) Union(other Set) Set {
	return s | other
}

func (s Set) Len() int {
	n := 0
	for _, typ := range _TypeValues {
		if s.Has(typ) {
			n++
		}
	}
	return n
}

// Types lists the members in id order.
func (s Set) Types() []Type {
	types := make([]Type, 0, s.Len())
	for _, typ := range _TypeValues {
		if s.Has(typ) {
			types = append(types, typ)
		}
	}
	return types
}

func (s Set) String() string {
	types := s.Types()
	names := make([]string, len(types))
	for i, typ := range types {
		names[i] = typ.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

var allTypes = NewSet(_TypeValues...)

// Valid reports whether every member is one of the eighteen types.
func (s Set) Valid() bool {
	return s&^allTypes == 0
}
