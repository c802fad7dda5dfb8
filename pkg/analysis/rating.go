package analysis

//go:generate enumer -type=Grade -linecomment -json -text

// Grade is a qualitative rating of a roster's defensive profile.
type Grade int

const (
	Excellent    Grade = iota // Excellent
	AboveAverage              // Above Average
	Average                   // Average
	BelowAverage              // Below Average
	Bad                       // Bad
)

// Checked in order; the first bound exceeded by either the total or the net
// weakness count decides the grade.
var gradeBounds = []struct {
	bound int
	grade Grade
}{
	{bound: 10, grade: Bad},
	{bound: 7, grade: BelowAverage},
	{bound: 4, grade: Average},
	{bound: 2, grade: AboveAverage},
}

// Rate grades a roster from its aggregate counts. The net count may be
// negative.
func Rate(m Matchups) Grade {
	weaknesses, resistances, immunities := m.Totals()
	net := weaknesses - resistances - immunities

	for _, b := range gradeBounds {
		if weaknesses > b.bound || net > b.bound {
			return b.grade
		}
	}
	return Excellent
}
