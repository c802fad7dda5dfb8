package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/notjagan/teamtype/pkg/analysis"
)

// MaxSize is the number of slots in a roster.
const MaxSize = 6

var (
	ErrRosterFull  = errors.New("roster already has six members")
	ErrEmptyRoster = errors.New("roster has no members")
)

// Builder collects slots and resolves them into a roster.
type Builder struct {
	dex   Dex
	slots []Slot
}

// NewBuilder returns a builder. dex may be nil when no slot names a Pokemon.
func NewBuilder(dex Dex) *Builder {
	return &Builder{
		dex:   dex,
		slots: make([]Slot, 0, MaxSize),
	}
}

// Add appends a slot. Empty slots are skipped.
func (b *Builder) Add(slot Slot) error {
	if slot.Empty() {
		return nil
	}
	if err := slot.validate(); err != nil {
		return err
	}
	if len(b.slots) >= MaxSize {
		return ErrRosterFull
	}

	b.slots = append(b.slots, slot)
	return nil
}

// AddString parses and appends a slot.
func (b *Builder) AddString(s string) error {
	slot, err := ParseSlot(s)
	if err != nil {
		return fmt.Errorf("could not parse slot %q: %w", s, err)
	}
	return b.Add(slot)
}

func (b *Builder) Len() int {
	return len(b.slots)
}

func (b *Builder) Slots() []Slot {
	slots := make([]Slot, len(b.slots))
	copy(slots, b.slots)
	return slots
}

// Roster resolves every slot.
func (b *Builder) Roster(ctx context.Context) (analysis.Roster, error) {
	if len(b.slots) == 0 {
		return nil, ErrEmptyRoster
	}

	roster := make(analysis.Roster, len(b.slots))
	for i, slot := range b.slots {
		entry, err := slot.Resolve(ctx, b.dex)
		if err != nil {
			return nil, fmt.Errorf("error while resolving slot %d: %w", i+1, err)
		}
		roster[i] = entry
	}

	return roster, nil
}
