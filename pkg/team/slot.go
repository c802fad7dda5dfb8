package team

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/notjagan/teamtype/pkg/analysis"
	"github.com/notjagan/teamtype/pkg/typechart"
)

var (
	ErrSlotFormat    = errors.New("invalid slot format")
	ErrDuplicateType = errors.New("primary and secondary types are the same")
	ErrNoDex         = errors.New("no dex available to look up pokemon")
)

// Dex resolves a Pokemon name to a roster entry.
type Dex interface {
	Entry(ctx context.Context, pokemon string) (analysis.Entry, error)
}

// Slot is one position of a roster as entered by a user. A slot names either a
// Pokemon, resolved through a Dex, or one or two types.
type Slot struct {
	Pokemon   string
	Primary   typechart.Type
	Secondary typechart.Type
	Ability   string
	Immune    typechart.Set
}

// Empty reports whether the slot holds no entity.
func (slot Slot) Empty() bool {
	return slot.Pokemon == "" && slot.Primary == 0
}

func (slot Slot) validate() error {
	if slot.Pokemon != "" && (slot.Primary != 0 || slot.Secondary != 0) {
		return fmt.Errorf("slot names both a pokemon and types: %w", ErrSlotFormat)
	}
	if slot.Pokemon == "" && slot.Primary == 0 && slot.Secondary != 0 {
		return fmt.Errorf("slot has a secondary type without a primary type: %w", ErrSlotFormat)
	}
	if slot.Primary != 0 && slot.Primary == slot.Secondary {
		return fmt.Errorf("slot %v/%v: %w", slot.Primary, slot.Secondary, ErrDuplicateType)
	}
	return nil
}

// Resolve converts the slot into an analysis entry.
func (slot Slot) Resolve(ctx context.Context, dex Dex) (analysis.Entry, error) {
	var entry analysis.Entry
	if slot.Pokemon != "" {
		if dex == nil {
			return analysis.Entry{}, fmt.Errorf("could not resolve %q: %w", slot.Pokemon, ErrNoDex)
		}

		var err error
		entry, err = dex.Entry(ctx, slot.Pokemon)
		if err != nil {
			return analysis.Entry{}, fmt.Errorf("could not resolve pokemon %q: %w", slot.Pokemon, err)
		}
	} else {
		entry = analysis.Entry{Primary: slot.Primary, Secondary: slot.Secondary}
	}

	entry.Immunities = entry.Immunities.Union(slot.Immune)
	if slot.Ability != "" {
		entry = entry.WithAbility(slot.Ability)
	}

	return entry, nil
}

func (slot Slot) String() string {
	var b strings.Builder
	if slot.Pokemon != "" {
		b.WriteString("@" + slot.Pokemon)
	} else if slot.Primary != 0 {
		b.WriteString(slot.Primary.String())
		if slot.Secondary != 0 {
			b.WriteString("/" + slot.Secondary.String())
		}
	}
	if slot.Ability != "" {
		b.WriteString("+" + slot.Ability)
	}
	if types := slot.Immune.Types(); len(types) > 0 {
		names := make([]string, len(types))
		for i, typ := range types {
			names[i] = typ.String()
		}
		b.WriteString("!" + strings.Join(names, ","))
	}
	return b.String()
}

// ParseSlot reads a slot written as
//
//	Type[/Type] or @pokemon, then optionally +ability and !Type[,Type...]
//
// for example "fire/flying", "@gengar+levitate" or "Water!Electric". An empty
// string is an empty slot.
func ParseSlot(s string) (Slot, error) {
	var slot Slot

	s = strings.TrimSpace(s)
	if s == "" {
		return slot, nil
	}

	if i := strings.LastIndex(s, "!"); i >= 0 {
		for _, name := range strings.Split(s[i+1:], ",") {
			typ, err := typechart.Parse(name)
			if err != nil {
				return Slot{}, fmt.Errorf("invalid immunity in slot %q: %w", s, err)
			}
			slot.Immune = slot.Immune.With(typ)
		}
		s = strings.TrimSpace(s[:i])
	}

	if i := strings.Index(s, "+"); i >= 0 {
		slot.Ability = strings.TrimSpace(s[i+1:])
		if slot.Ability == "" {
			return Slot{}, fmt.Errorf("empty ability in slot %q: %w", s, ErrSlotFormat)
		}
		s = strings.TrimSpace(s[:i])
	}

	switch {
	case strings.HasPrefix(s, "@"):
		slot.Pokemon = strings.ToLower(strings.TrimSpace(s[1:]))
		if slot.Pokemon == "" {
			return Slot{}, fmt.Errorf("empty pokemon name: %w", ErrSlotFormat)
		}
	case s == "":
		return Slot{}, fmt.Errorf("slot has no types: %w", ErrSlotFormat)
	default:
		names := strings.Split(s, "/")
		if len(names) > 2 {
			return Slot{}, fmt.Errorf("slot %q has more than two types: %w", s, ErrSlotFormat)
		}

		var err error
		slot.Primary, err = typechart.Parse(names[0])
		if err != nil {
			return Slot{}, fmt.Errorf("invalid primary type: %w", err)
		}
		if len(names) == 2 {
			slot.Secondary, err = typechart.Parse(names[1])
			if err != nil {
				return Slot{}, fmt.Errorf("invalid secondary type: %w", err)
			}
		}
	}

	if err := slot.validate(); err != nil {
		return Slot{}, err
	}

	return slot, nil
}
