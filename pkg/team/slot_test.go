package team

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/notjagan/teamtype/pkg/analysis"
	"github.com/notjagan/teamtype/pkg/typechart"
)

type fakeDex map[string]analysis.Entry

var errNoSuchPokemon = errors.New("no such pokemon")

func (dex fakeDex) Entry(ctx context.Context, pokemon string) (analysis.Entry, error) {
	entry, ok := dex[pokemon]
	if !ok {
		return analysis.Entry{}, fmt.Errorf("%q: %w", pokemon, errNoSuchPokemon)
	}
	return entry, nil
}

var testDex = fakeDex{
	"gengar":    analysis.NewEntry(typechart.Ghost, typechart.Poison),
	"charizard": analysis.NewEntry(typechart.Fire, typechart.Flying),
	"lanturn":   analysis.NewEntry(typechart.Water, typechart.Electric),
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		input string
		want  Slot
	}{
		{input: "", want: Slot{}},
		{input: "   ", want: Slot{}},
		{input: "Fire", want: Slot{Primary: typechart.Fire}},
		{input: "fire/flying", want: Slot{Primary: typechart.Fire, Secondary: typechart.Flying}},
		{input: " Water / Ground ", want: Slot{Primary: typechart.Water, Secondary: typechart.Ground}},
		{input: "Water!Electric", want: Slot{Primary: typechart.Water, Immune: typechart.NewSet(typechart.Electric)}},
		{input: "Steel!fire,ground", want: Slot{Primary: typechart.Steel, Immune: typechart.NewSet(typechart.Fire, typechart.Ground)}},
		{input: "@Gengar", want: Slot{Pokemon: "gengar"}},
		{input: "@gengar+levitate", want: Slot{Pokemon: "gengar", Ability: "levitate"}},
		{input: "Electric+Levitate!Water", want: Slot{Primary: typechart.Electric, Ability: "Levitate", Immune: typechart.NewSet(typechart.Water)}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSlot(tt.input)
			if err != nil {
				t.Fatalf("ParseSlot(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSlot(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSlotErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{input: "Fire/Fire", want: ErrDuplicateType},
		{input: "fire/FIRE", want: ErrDuplicateType},
		{input: "Fire/Water/Grass", want: ErrSlotFormat},
		{input: "Sound", want: typechart.ErrUnknownType},
		{input: "Fire/Sound", want: typechart.ErrUnknownType},
		{input: "Fire!Sound", want: typechart.ErrUnknownType},
		{input: "@", want: ErrSlotFormat},
		{input: "Fire+", want: ErrSlotFormat},
		{input: "!Ground", want: ErrSlotFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseSlot(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseSlot(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestSlotString(t *testing.T) {
	for _, input := range []string{"Fire", "Fire/Flying", "@gengar+levitate", "Water!Electric", "Steel!Ground,Fire"} {
		slot, err := ParseSlot(input)
		if err != nil {
			t.Fatalf("ParseSlot(%q) returned error: %v", input, err)
		}
		again, err := ParseSlot(slot.String())
		if err != nil {
			t.Fatalf("ParseSlot(%q) returned error: %v", slot.String(), err)
		}
		if again != slot {
			t.Errorf("%q did not survive formatting: %+v != %+v", input, again, slot)
		}
	}
}

func TestSlotResolve(t *testing.T) {
	ctx := context.Background()

	slot, _ := ParseSlot("@gengar+levitate")
	entry, err := slot.Resolve(ctx, testDex)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := analysis.NewEntry(typechart.Ghost, typechart.Poison, typechart.Ground)
	if entry != want {
		t.Errorf("Resolve() = %v, want %v", entry, want)
	}

	if _, err := slot.Resolve(ctx, nil); !errors.Is(err, ErrNoDex) {
		t.Errorf("Resolve without dex error = %v, want ErrNoDex", err)
	}

	slot, _ = ParseSlot("@missingno")
	if _, err := slot.Resolve(ctx, testDex); !errors.Is(err, errNoSuchPokemon) {
		t.Errorf("Resolve error = %v, want errNoSuchPokemon", err)
	}
}
