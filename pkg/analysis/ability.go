package analysis

import (
	"strings"

	"github.com/notjagan/teamtype/pkg/typechart"
)

// Abilities that make their holder immune to an attacking type, keyed by
// PokeAPI identifier.
var abilityImmunities = map[string]typechart.Set{
	"levitate":        typechart.NewSet(typechart.Ground),
	"earth-eater":     typechart.NewSet(typechart.Ground),
	"flash-fire":      typechart.NewSet(typechart.Fire),
	"well-baked-body": typechart.NewSet(typechart.Fire),
	"volt-absorb":     typechart.NewSet(typechart.Electric),
	"lightning-rod":   typechart.NewSet(typechart.Electric),
	"motor-drive":     typechart.NewSet(typechart.Electric),
	"water-absorb":    typechart.NewSet(typechart.Water),
	"storm-drain":     typechart.NewSet(typechart.Water),
	"dry-skin":        typechart.NewSet(typechart.Water),
	"sap-sipper":      typechart.NewSet(typechart.Grass),
}

// AbilityImmunities returns the types an ability grants immunity to. Display
// names ("Volt Absorb") and identifiers ("volt-absorb") are both accepted.
func AbilityImmunities(ability string) typechart.Set {
	key := strings.ToLower(strings.TrimSpace(ability))
	key = strings.ReplaceAll(key, " ", "-")
	return abilityImmunities[key]
}
