package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/notjagan/teamtype/pkg/typechart"
)

func names(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Name()
	}
	return out
}

func TestRecommendNoWeaknesses(t *testing.T) {
	tests := map[string]Roster{
		"empty": nil,
		"covered pair": {
			NewEntry(typechart.Bug, typechart.Water),
			NewEntry(typechart.Dragon, typechart.Steel),
		},
	}

	for name, roster := range tests {
		t.Run(name, func(t *testing.T) {
			got := Recommend(mustMatchups(t, roster))
			if !reflect.DeepEqual(got, []string{NoWeaknessesAdvice}) {
				t.Errorf("Recommend() = %q, want only the no-weaknesses message", got)
			}
		})
	}
}

func TestRecommendSixNormal(t *testing.T) {
	roster := make(Roster, 6)
	for i := range roster {
		roster[i] = NewEntry(typechart.Normal, 0)
	}

	got := Recommend(mustMatchups(t, roster))
	want := []string{
		"Adding a Bug type Pokémon would mitigate 1 weaknesses.",
		"\nDual-Type Recommendations:\n" +
			"Adding a Bug/Ghost type Pokémon would mitigate 1 weaknesses.\n" +
			"Adding a Fairy/Ghost type Pokémon would mitigate 1 weaknesses.\n" +
			"Adding a Flying/Ghost type Pokémon would mitigate 1 weaknesses.\n" +
			"Adding a Ghost/Poison type Pokémon would mitigate 1 weaknesses.\n" +
			"Adding a Ghost/Psychic type Pokémon would mitigate 1 weaknesses.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend() =\n%q\nwant\n%q", got, want)
	}
}

func TestRankFireFlying(t *testing.T) {
	r := Rank(mustMatchups(t, Roster{NewEntry(typechart.Fire, typechart.Flying)}))

	if !r.HasWeaknesses {
		t.Fatalf("expected weaknesses")
	}
	if r.MostCommon != typechart.Rock {
		t.Errorf("MostCommon = %v, want Rock", r.MostCommon)
	}

	wantSingles := []Candidate{
		{Types: []typechart.Type{typechart.Steel}, Score: 5, Mitigated: 2},
		{Types: []typechart.Type{typechart.Electric}, Score: 1, Mitigated: 1},
		{Types: []typechart.Type{typechart.Normal}, Score: 1, Mitigated: 1},
		{Types: []typechart.Type{typechart.Poison}, Score: 1, Mitigated: 1},
	}
	if !reflect.DeepEqual(r.Singles, wantSingles) {
		t.Errorf("Singles = %+v, want %+v", r.Singles, wantSingles)
	}

	wantDuals := []string{"Dragon/Fighting", "Dragon/Ground", "Dragon/Steel", "Fighting/Grass", "Grass/Ground"}
	if got := names(r.Duals); !reflect.DeepEqual(got, wantDuals) {
		t.Errorf("Duals = %v, want %v", got, wantDuals)
	}
	for _, c := range r.Duals {
		if c.Score != 6 || c.Mitigated != 3 {
			t.Errorf("%s scored %d mitigating %d, want 6 and 3", c.Name(), c.Score, c.Mitigated)
		}
	}
}

func TestRankMixedRoster(t *testing.T) {
	m := mustMatchups(t, Roster{
		NewEntry(typechart.Fire, typechart.Flying),
		NewEntry(typechart.Grass, typechart.Poison),
		NewEntry(typechart.Water, 0),
	})
	r := Rank(m)

	if r.MostCommon != typechart.Electric {
		t.Errorf("MostCommon = %v, want Electric", r.MostCommon)
	}

	wantSingles := []string{"Ground", "Electric", "Grass", "Normal", "Psychic"}
	if got := names(r.Singles); !reflect.DeepEqual(got, wantSingles) {
		t.Errorf("Singles = %v, want %v", got, wantSingles)
	}
	if r.Singles[0].Score != 6 || r.Singles[0].Mitigated != 2 {
		t.Errorf("Ground scored %d mitigating %d, want 6 and 2", r.Singles[0].Score, r.Singles[0].Mitigated)
	}

	wantDuals := []Candidate{
		{Types: []typechart.Type{typechart.Dragon, typechart.Ground}, Score: 11, Mitigated: 3},
		{Types: []typechart.Type{typechart.Electric, typechart.Ground}, Score: 11, Mitigated: 3},
		{Types: []typechart.Type{typechart.Grass, typechart.Ground}, Score: 10, Mitigated: 3},
		{Types: []typechart.Type{typechart.Ground, typechart.Steel}, Score: 9, Mitigated: 5},
		{Types: []typechart.Type{typechart.Dragon, typechart.Steel}, Score: 8, Mitigated: 5},
	}
	if !reflect.DeepEqual(r.Duals, wantDuals) {
		t.Errorf("Duals = %+v, want %+v", r.Duals, wantDuals)
	}

	if got := Rate(m); got != BelowAverage {
		t.Errorf("Rate() = %v, want Below Average", got)
	}
}

func TestRankMostCommonTieBreak(t *testing.T) {
	// Fire, Fighting, Rock and Steel all sit at three weaknesses; Fighting is
	// first by name.
	roster := Roster{
		NewEntry(typechart.Ice, 0),
		NewEntry(typechart.Ice, 0),
		NewEntry(typechart.Ice, 0),
	}
	r := Rank(mustMatchups(t, roster))
	if r.MostCommon != typechart.Fighting {
		t.Errorf("MostCommon = %v, want Fighting", r.MostCommon)
	}
	if got := names(r.Singles); !reflect.DeepEqual(got, []string{"Poison", "Bug", "Fairy", "Flying", "Psychic"}) {
		t.Errorf("Singles = %v", got)
	}
}

func TestRankMostCommonIgnoresCoveredWeaknesses(t *testing.T) {
	var m Matchups
	m.Weaknesses[typechart.Bug] = 5
	m.Resistances[typechart.Bug] = 5
	m.Weaknesses[typechart.Water] = 1

	r := Rank(m)
	if r.MostCommon != typechart.Water {
		t.Errorf("MostCommon = %v, want Water", r.MostCommon)
	}
}

func TestAdviceFallbacks(t *testing.T) {
	r := Ranking{HasWeaknesses: true}
	want := []string{NoSingleTypeAdvice, NoDualTypeAdvice}
	if got := r.Advice(); !reflect.DeepEqual(got, want) {
		t.Errorf("Advice() = %q, want %q", got, want)
	}
}

func TestRecommendAlwaysNonEmpty(t *testing.T) {
	types := typechart.All()
	for i, a := range types {
		for _, b := range types[i:] {
			m := mustMatchups(t, Roster{NewEntry(a, b)})
			advice := Recommend(m)
			if len(advice) == 0 {
				t.Fatalf("Recommend() for %v/%v is empty", a, b)
			}

			r := Rank(m)
			if len(r.Singles) > 5 || len(r.Duals) > 5 {
				t.Errorf("%v/%v produced more than five candidates", a, b)
			}
			for _, c := range append(r.Singles, r.Duals...) {
				if c.Score <= 0 {
					t.Errorf("%v/%v recommended %s with score %d", a, b, c.Name(), c.Score)
				}
			}
			if r.HasWeaknesses && !strings.HasPrefix(advice[len(advice)-1], DualTypeHeader) &&
				advice[len(advice)-1] != NoDualTypeAdvice {
				t.Errorf("%v/%v does not end with the dual-type block: %q", a, b, advice)
			}
		}
	}
}
