package analysis

import (
	"fmt"
	"strings"

	"github.com/notjagan/teamtype/pkg/typechart"
)

// Entry is one roster slot. Secondary is zero for single-typed entries.
// Immunities are entity-specific overrides such as abilities or held items.
type Entry struct {
	Primary    typechart.Type
	Secondary  typechart.Type
	Immunities typechart.Set
}

func NewEntry(primary typechart.Type, secondary typechart.Type, immune ...typechart.Type) Entry {
	return Entry{
		Primary:    primary,
		Secondary:  secondary,
		Immunities: typechart.NewSet(immune...),
	}
}

// WithAbility adds the immunities granted by an ability.
func (e Entry) WithAbility(ability string) Entry {
	e.Immunities = e.Immunities.Union(AbilityImmunities(ability))
	return e
}

func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Primary.String())
	if e.Secondary != 0 && e.Secondary != e.Primary {
		b.WriteString("/")
		b.WriteString(e.Secondary.String())
	}
	if e.Immunities != 0 {
		fmt.Fprintf(&b, " (immune: %v)", e.Immunities)
	}
	return b.String()
}

func (e Entry) sources() ([]typechart.Relation, error) {
	primary, err := typechart.Lookup(e.Primary)
	if err != nil {
		return nil, fmt.Errorf("invalid primary type: %w", err)
	}
	if !e.Immunities.Valid() {
		return nil, fmt.Errorf("invalid specific immunities: %w", typechart.ErrUnknownType)
	}

	if e.Secondary == 0 || e.Secondary == e.Primary {
		return []typechart.Relation{primary}, nil
	}

	secondary, err := typechart.Lookup(e.Secondary)
	if err != nil {
		return nil, fmt.Errorf("invalid secondary type: %w", err)
	}
	return []typechart.Relation{primary, secondary}, nil
}

// Roster is an ordered set of entries. Order does not affect the analysis.
type Roster []Entry

// Counts tallies a number per type. Index 0 is unused.
type Counts [typechart.Count + 1]int

func (c *Counts) Of(typ typechart.Type) int {
	if !typ.IsAType() {
		return 0
	}
	return c[typ]
}

func (c *Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Matchups holds the per-type counts accumulated over a roster.
type Matchups struct {
	Weaknesses  Counts
	Resistances Counts
	Immunities  Counts
}

// Net is the weakness count left after crediting resistances and immunities,
// floored at zero.
func (m *Matchups) Net(typ typechart.Type) int {
	return max(0, m.Weaknesses.Of(typ)-m.Resistances.Of(typ)-m.Immunities.Of(typ))
}

func (m *Matchups) NetWeaknesses() Counts {
	var net Counts
	for _, typ := range typechart.All() {
		net[typ] = m.Net(typ)
	}
	return net
}

func (m *Matchups) Totals() (weaknesses, resistances, immunities int) {
	return m.Weaknesses.Total(), m.Resistances.Total(), m.Immunities.Total()
}

// Effectiveness computes the damage factor of every attacking type against a
// single entry. A specific immunity blocks the chart weakness for that type
// but leaves resistances and chart immunities in place.
func Effectiveness(e Entry) (typechart.Effectiveness, error) {
	sources, err := e.sources()
	if err != nil {
		return typechart.Effectiveness{}, err
	}

	eff := typechart.NeutralEffectiveness()
	for _, rel := range sources {
		for _, typ := range typechart.All() {
			if rel.Weak.Has(typ) && !e.Immunities.Has(typ) {
				eff[typ] *= 2
			}
			if rel.Resist.Has(typ) {
				eff[typ] /= 2
			}
			if rel.Immune.Has(typ) {
				eff[typ] = typechart.Immune
			}
		}
	}

	return eff, nil
}

// Defending is Effectiveness as seen in battle: every specific immunity takes
// its attacking type to zero.
func Defending(e Entry) (typechart.Effectiveness, error) {
	eff, err := Effectiveness(e)
	if err != nil {
		return typechart.Effectiveness{}, err
	}

	for _, typ := range e.Immunities.Types() {
		eff[typ] = typechart.Immune
	}
	return eff, nil
}

// ComputeMatchups aggregates weakness, resistance and immunity counts over a
// roster. A quadruple weakness counts twice; a quarter resistance counts for
// nothing.
func ComputeMatchups(roster Roster) (Matchups, error) {
	var m Matchups
	for i, e := range roster {
		eff, err := Effectiveness(e)
		if err != nil {
			return Matchups{}, fmt.Errorf("could not compute matchups for entry %d: %w", i+1, err)
		}

		for _, typ := range e.Immunities.Types() {
			m.Immunities[typ]++
		}

		for _, typ := range typechart.All() {
			switch eff[typ] {
			case typechart.DoubleSuperEffective:
				m.Weaknesses[typ] += 2
			case typechart.SuperEffective:
				m.Weaknesses[typ]++
			case typechart.NotVeryEffective:
				m.Resistances[typ]++
			case typechart.Immune:
				m.Immunities[typ]++
			}
		}
	}

	return m, nil
}
