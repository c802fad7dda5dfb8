package typechart

import "fmt"

// EfficacyLevel is a damage factor expressed in percent, the same scale as the
// dex's damage_factor column.
type EfficacyLevel int

const (
	DoubleSuperEffective   EfficacyLevel = 400
	SuperEffective         EfficacyLevel = 200
	NormalEffective        EfficacyLevel = 100
	NotVeryEffective       EfficacyLevel = 50
	DoubleNotVeryEffective EfficacyLevel = 25
	Immune                 EfficacyLevel = 0
)

func (lvl EfficacyLevel) Multiplier() float64 {
	return float64(lvl) / 100
}

func (lvl EfficacyLevel) String() string {
	return fmt.Sprintf("%gx", lvl.Multiplier())
}

// Levels lists the efficacy levels from strongest to weakest.
var Levels = []EfficacyLevel{
	DoubleSuperEffective,
	SuperEffective,
	NormalEffective,
	NotVeryEffective,
	DoubleNotVeryEffective,
	Immune,
}

// Effectiveness maps each attacking type to the damage factor it deals
// against one defender. Index 0 is unused.
type Effectiveness [Count + 1]EfficacyLevel

// NeutralEffectiveness returns a map with every type at NormalEffective.
func NeutralEffectiveness() Effectiveness {
	var eff Effectiveness
	for _, typ := range _TypeValues {
		eff[typ] = NormalEffective
	}
	return eff
}

func (eff *Effectiveness) Of(typ Type) EfficacyLevel {
	return eff[typ]
}

// ByLevel groups the attacking types by damage factor, each group in name order.
func (eff *Effectiveness) ByLevel() map[EfficacyLevel][]Type {
	groups := make(map[EfficacyLevel][]Type)
	for _, typ := range sorted {
		groups[eff[typ]] = append(groups[eff[typ]], typ)
	}
	return groups
}
