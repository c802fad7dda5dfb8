package team

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/notjagan/teamtype/pkg/typechart"
)

// File is a roster read from YAML:
//
//	members:
//	  - types: [Fire, Flying]
//	  - pokemon: gengar
//	    ability: levitate
//	  - types: [Water]
//	    immune: [Electric]
type File struct {
	Members []Member `yaml:"members"`
}

type Member struct {
	Pokemon string           `yaml:"pokemon"`
	Types   []typechart.Type `yaml:"types"`
	Ability string           `yaml:"ability"`
	Immune  []typechart.Type `yaml:"immune"`
}

func (m Member) Slot() (Slot, error) {
	if len(m.Types) > 2 {
		return Slot{}, fmt.Errorf("member has %d types: %w", len(m.Types), ErrSlotFormat)
	}

	slot := Slot{
		Pokemon: m.Pokemon,
		Ability: m.Ability,
		Immune:  typechart.NewSet(m.Immune...),
	}
	if len(m.Types) > 0 {
		slot.Primary = m.Types[0]
	}
	if len(m.Types) > 1 {
		slot.Secondary = m.Types[1]
	}

	if err := slot.validate(); err != nil {
		return Slot{}, err
	}
	return slot, nil
}

// LoadFile reads the slots of a YAML roster file.
func LoadFile(path string) ([]Slot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading roster file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("loading roster file: %w", err)
	}

	slots := make([]Slot, 0, len(f.Members))
	for i, m := range f.Members {
		slot, err := m.Slot()
		if err != nil {
			return nil, fmt.Errorf("loading roster file: member %d: %w", i+1, err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}
