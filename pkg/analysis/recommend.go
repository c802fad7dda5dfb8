package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notjagan/teamtype/pkg/typechart"
)

const (
	NoWeaknessesAdvice = "Your team has no major weaknesses. No additional types are necessary."
	NoSingleTypeAdvice = "No single type can greatly improve your team, consider dual-type Pokémon or coverage moves."
	NoDualTypeAdvice   = "No dual-type Pokémon significantly improve your team."
	DualTypeHeader     = "\nDual-Type Recommendations:\n"
)

const (
	immuneCommonWeight = 5
	resistCommonWeight = 3
	recommendLimit     = 5
)

// Candidate is a single type or type pair proposed as a roster addition.
type Candidate struct {
	Types []typechart.Type `json:"types"`
	Score int              `json:"score"`
	// Mitigated counts the roster's net weaknesses the candidate resists or is
	// immune to.
	Mitigated int `json:"mitigated"`
}

func (c Candidate) Name() string {
	names := make([]string, len(c.Types))
	for i, typ := range c.Types {
		names[i] = typ.String()
	}
	return strings.Join(names, "/")
}

func (c Candidate) Advice() string {
	return fmt.Sprintf("Adding a %s type Pokémon would mitigate %d weaknesses.", c.Name(), c.Mitigated)
}

// Ranking is the scored outcome of the recommendation engine. Singles and
// Duals hold the positively scored candidates among the best five of each kind.
type Ranking struct {
	HasWeaknesses bool
	MostCommon    typechart.Type
	Singles       []Candidate
	Duals         []Candidate
}

type profile struct {
	types []typechart.Type
	// own sets of the candidate, unioned for pairs
	rel     typechart.Relation
	resists func(typechart.Type) bool
	immune  func(typechart.Type) bool
}

// A single candidate covers weakness W when W's own relation resists or is
// immune to the candidate.
func singleProfile(c typechart.Type) profile {
	return profile{
		types: []typechart.Type{c},
		rel:   typechart.Of(c),
		resists: func(w typechart.Type) bool {
			return typechart.Of(w).Resist.Has(c)
		},
		immune: func(w typechart.Type) bool {
			return typechart.Of(w).Immune.Has(c)
		},
	}
}

// A pair covers weakness W when W is in the union of the pair's resist or
// immune sets.
func dualProfile(c1, c2 typechart.Type) profile {
	r1, r2 := typechart.Of(c1), typechart.Of(c2)
	rel := typechart.Relation{
		Weak:   r1.Weak.Union(r2.Weak),
		Resist: r1.Resist.Union(r2.Resist),
		Immune: r1.Immune.Union(r2.Immune),
	}
	return profile{
		types:   []typechart.Type{c1, c2},
		rel:     rel,
		resists: rel.Resist.Has,
		immune:  rel.Immune.Has,
	}
}

func (p profile) score(net *Counts, common typechart.Type) (Candidate, bool) {
	var resistCount, immuneCount, newWeaknesses, mitigated int
	for _, w := range typechart.Sorted() {
		if net[w] <= 0 {
			continue
		}

		resists, immune := p.resists(w), p.immune(w)
		if resists {
			resistCount++
		}
		if immune {
			immuneCount++
		}
		if resists || immune {
			mitigated++
		}
		if p.rel.Weak.Has(w) {
			newWeaknesses++
		}
	}

	if resistCount == 0 && immuneCount == 0 {
		return Candidate{}, false
	}

	score := immuneCount + resistCount - newWeaknesses
	if p.rel.Immune.Has(common) {
		score += immuneCommonWeight
	}
	if p.rel.Resist.Has(common) {
		score += resistCommonWeight
	}

	return Candidate{
		Types:     p.types,
		Score:     score,
		Mitigated: mitigated,
	}, true
}

// mostCommonWeakness picks the type with the highest raw weakness count among
// those with a positive net weakness. The first maximum in name order wins.
func mostCommonWeakness(m *Matchups, net *Counts) (typechart.Type, bool) {
	var common typechart.Type
	best := -1
	for _, typ := range typechart.Sorted() {
		if net[typ] <= 0 {
			continue
		}
		if w := m.Weaknesses.Of(typ); w > best {
			common, best = typ, w
		}
	}
	return common, best >= 0
}

func best(cands []Candidate) []Candidate {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Score > cands[j].Score
	})
	if len(cands) > recommendLimit {
		cands = cands[:recommendLimit]
	}

	positive := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Score > 0 {
			positive = append(positive, c)
		}
	}
	return positive
}

// Rank scores every single type and every unordered pair of distinct types
// against the roster's net weaknesses.
func Rank(m Matchups) Ranking {
	net := m.NetWeaknesses()
	common, ok := mostCommonWeakness(&m, &net)
	if !ok {
		return Ranking{}
	}

	types := typechart.Sorted()

	singles := make([]Candidate, 0, len(types))
	for _, c := range types {
		if cand, ok := singleProfile(c).score(&net, common); ok {
			singles = append(singles, cand)
		}
	}

	duals := make([]Candidate, 0, len(types)*(len(types)-1)/2)
	for i, c1 := range types {
		for _, c2 := range types[i+1:] {
			if cand, ok := dualProfile(c1, c2).score(&net, common); ok {
				duals = append(duals, cand)
			}
		}
	}

	return Ranking{
		HasWeaknesses: true,
		MostCommon:    common,
		Singles:       best(singles),
		Duals:         best(duals),
	}
}

// Advice renders the ranking as advisory lines. The dual-type block is a
// single trailing item, so the result is never empty.
func (r Ranking) Advice() []string {
	if !r.HasWeaknesses {
		return []string{NoWeaknessesAdvice}
	}

	advice := make([]string, 0, len(r.Singles)+1)
	for _, c := range r.Singles {
		advice = append(advice, c.Advice())
	}
	if len(r.Singles) == 0 {
		advice = append(advice, NoSingleTypeAdvice)
	}

	if len(r.Duals) == 0 {
		return append(advice, NoDualTypeAdvice)
	}

	lines := make([]string, len(r.Duals))
	for i, c := range r.Duals {
		lines[i] = c.Advice()
	}
	return append(advice, DualTypeHeader+strings.Join(lines, "\n"))
}

// Recommend suggests types that would offset the roster's weaknesses.
func Recommend(m Matchups) []string {
	return Rank(m).Advice()
}
