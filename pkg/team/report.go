package team

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/notjagan/teamtype/pkg/analysis"
	"github.com/notjagan/teamtype/pkg/typechart"
)

// Report is the full analysis of one roster.
type Report struct {
	Roster   analysis.Roster
	Matchups analysis.Matchups
	Ranking  analysis.Ranking
	Grade    analysis.Grade
}

// Analyze runs the matchup aggregation, the recommendation engine and the
// rating over a roster.
func Analyze(roster analysis.Roster) (*Report, error) {
	m, err := analysis.ComputeMatchups(roster)
	if err != nil {
		return nil, fmt.Errorf("error while computing matchups: %w", err)
	}

	return &Report{
		Roster:   roster,
		Matchups: m,
		Ranking:  analysis.Rank(m),
		Grade:    analysis.Rate(m),
	}, nil
}

// AnalyzeBuilder resolves the builder's roster and analyzes it.
func AnalyzeBuilder(ctx context.Context, b *Builder) (*Report, error) {
	roster, err := b.Roster(ctx)
	if err != nil {
		return nil, err
	}
	return Analyze(roster)
}

func (r *Report) Advice() []string {
	return r.Ranking.Advice()
}

type TypeCount struct {
	Type  typechart.Type
	Count int
}

// Ranked lists the non-zero counts, highest first. Ties keep chart order.
func Ranked(counts analysis.Counts) []TypeCount {
	ranked := make([]TypeCount, 0, typechart.Count)
	for _, typ := range typechart.ChartOrder() {
		if n := counts.Of(typ); n > 0 {
			ranked = append(ranked, TypeCount{Type: typ, Count: n})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

func formatCounts(counts analysis.Counts) string {
	ranked := Ranked(counts)
	lines := make([]string, len(ranked))
	for i, tc := range ranked {
		lines[i] = fmt.Sprintf("%s: %d", tc.Type, tc.Count)
	}
	return strings.Join(lines, "\n")
}

// Format writes the report as plain text.
func (r *Report) Format(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Weaknesses:\n%s\n\nResistances:\n%s\n\nImmunities:\n%s\n\nRecommendations:\n%s\n\nTeam Rating: %s\n",
		formatCounts(r.Matchups.Weaknesses),
		formatCounts(r.Matchups.Resistances),
		formatCounts(r.Matchups.Immunities),
		strings.Join(r.Advice(), "\n"),
		r.Grade,
	)
	if err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	return nil
}

// Summary is a plain-data view of a report for JSON consumers.
type Summary struct {
	Members            []string           `json:"members"`
	Weaknesses         map[string]int     `json:"weaknesses"`
	Resistances        map[string]int     `json:"resistances"`
	Immunities         map[string]int     `json:"immunities"`
	MostCommonWeakness string             `json:"most_common_weakness,omitempty"`
	SingleTypes        []CandidateSummary `json:"single_types"`
	DualTypes          []CandidateSummary `json:"dual_types"`
	Advice             []string           `json:"advice"`
	Grade              string             `json:"grade"`
}

type CandidateSummary struct {
	Types     string `json:"types"`
	Score     int    `json:"score"`
	Mitigated int    `json:"mitigated"`
}

func countMap(counts analysis.Counts) map[string]int {
	out := make(map[string]int)
	for _, tc := range Ranked(counts) {
		out[tc.Type.String()] = tc.Count
	}
	return out
}

func candidateSummaries(cands []analysis.Candidate) []CandidateSummary {
	out := make([]CandidateSummary, len(cands))
	for i, c := range cands {
		out[i] = CandidateSummary{
			Types:     c.Name(),
			Score:     c.Score,
			Mitigated: c.Mitigated,
		}
	}
	return out
}

func (r *Report) Summary() Summary {
	members := make([]string, len(r.Roster))
	for i, e := range r.Roster {
		members[i] = e.String()
	}

	s := Summary{
		Members:     members,
		Weaknesses:  countMap(r.Matchups.Weaknesses),
		Resistances: countMap(r.Matchups.Resistances),
		Immunities:  countMap(r.Matchups.Immunities),
		SingleTypes: candidateSummaries(r.Ranking.Singles),
		DualTypes:   candidateSummaries(r.Ranking.Duals),
		Advice:      r.Advice(),
		Grade:       r.Grade.String(),
	}
	if r.Ranking.HasWeaknesses {
		s.MostCommonWeakness = r.Ranking.MostCommon.String()
	}
	return s
}
