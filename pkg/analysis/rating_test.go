package analysis

import (
	"testing"

	"github.com/notjagan/teamtype/pkg/typechart"
)

func matchupsWithTotals(weaknesses, resistances, immunities int) Matchups {
	var m Matchups
	m.Weaknesses[typechart.Fire] = weaknesses
	m.Resistances[typechart.Water] = resistances
	m.Immunities[typechart.Ghost] = immunities
	return m
}

func TestRate(t *testing.T) {
	tests := []struct {
		name        string
		weaknesses  int
		resistances int
		immunities  int
		want        Grade
	}{
		{name: "nothing", want: Excellent},
		{name: "two weaknesses", weaknesses: 2, want: Excellent},
		{name: "three weaknesses", weaknesses: 3, want: AboveAverage},
		{name: "three covered", weaknesses: 3, resistances: 10, want: AboveAverage},
		{name: "five weaknesses", weaknesses: 5, immunities: 5, want: Average},
		{name: "seven weaknesses", weaknesses: 7, want: Average},
		{name: "eight weaknesses", weaknesses: 8, resistances: 8, want: BelowAverage},
		{name: "ten weaknesses", weaknesses: 10, want: BelowAverage},
		{name: "eleven weaknesses", weaknesses: 11, resistances: 20, immunities: 20, want: Bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rate(matchupsWithTotals(tt.weaknesses, tt.resistances, tt.immunities))
			if got != tt.want {
				t.Errorf("Rate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRateSixNormal(t *testing.T) {
	roster := make(Roster, 6)
	for i := range roster {
		roster[i] = NewEntry(typechart.Normal, 0)
	}
	if got := Rate(mustMatchups(t, roster)); got != Average {
		t.Errorf("Rate() = %v, want Average", got)
	}
}

func TestRateMonotonic(t *testing.T) {
	for resistances := 0; resistances < 15; resistances += 3 {
		for immunities := 0; immunities < 6; immunities += 2 {
			prev := Excellent
			for weaknesses := 0; weaknesses <= 20; weaknesses++ {
				got := Rate(matchupsWithTotals(weaknesses, resistances, immunities))
				if got < prev {
					t.Fatalf("grade improved from %v to %v at %d weaknesses", prev, got, weaknesses)
				}
				prev = got
			}
		}
	}
}

func TestGradeString(t *testing.T) {
	tests := map[Grade]string{
		Excellent:    "Excellent",
		AboveAverage: "Above Average",
		Average:      "Average",
		BelowAverage: "Below Average",
		Bad:          "Bad",
	}
	for grade, want := range tests {
		if got := grade.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}

	g, err := GradeString("below average")
	if err != nil || g != BelowAverage {
		t.Errorf("GradeString() = %v, %v", g, err)
	}
}
