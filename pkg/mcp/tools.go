package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/notjagan/teamtype/pkg/analysis"
	"github.com/notjagan/teamtype/pkg/team"
	"github.com/notjagan/teamtype/pkg/typechart"
)

type MemberInput struct {
	Types   []string `json:"types,omitempty" jsonschema:"one or two type names such as Fire and Flying"`
	Pokemon string   `json:"pokemon,omitempty" jsonschema:"pokemon name, used instead of types"`
	Ability string   `json:"ability,omitempty" jsonschema:"ability granting extra immunities, e.g. levitate"`
	Immune  []string `json:"immune,omitempty" jsonschema:"types the member is additionally immune to"`
}

type AnalyzeTeamInput struct {
	Members []MemberInput `json:"members" jsonschema:"up to six team members"`
}

type TypeMatchupInput = MemberInput

type TypeMatchupOutput struct {
	Member string `json:"member"`
	// Levels maps a damage multiplier such as "2x" to the attacking types
	// dealing it.
	Levels map[string][]string `json:"levels"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "analyze_team",
		Description: "Count a team's type weaknesses, resistances and immunities, recommend types to add and rate the team",
	}, s.handleAnalyzeTeam)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "type_matchup",
		Description: "Show how effective each attacking type is against one defender",
	}, s.handleTypeMatchup)
}

func parseTypes(names []string) ([]typechart.Type, error) {
	types := make([]typechart.Type, len(names))
	for i, name := range names {
		typ, err := typechart.Parse(name)
		if err != nil {
			return nil, err
		}
		types[i] = typ
	}
	return types, nil
}

func (in MemberInput) slot() (team.Slot, error) {
	types, err := parseTypes(in.Types)
	if err != nil {
		return team.Slot{}, err
	}
	immune, err := parseTypes(in.Immune)
	if err != nil {
		return team.Slot{}, err
	}

	member := team.Member{
		Pokemon: in.Pokemon,
		Types:   types,
		Ability: in.Ability,
		Immune:  immune,
	}
	return member.Slot()
}

func (s *Server) entry(ctx context.Context, in MemberInput) (analysis.Entry, error) {
	slot, err := in.slot()
	if err != nil {
		return analysis.Entry{}, err
	}
	if slot.Empty() {
		return analysis.Entry{}, fmt.Errorf("member needs types or a pokemon: %w", team.ErrSlotFormat)
	}
	return slot.Resolve(ctx, s.dex)
}

func (s *Server) handleAnalyzeTeam(ctx context.Context, req *sdk.CallToolRequest, input AnalyzeTeamInput) (*sdk.CallToolResult, team.Summary, error) {
	builder := team.NewBuilder(s.dex)
	for i, member := range input.Members {
		slot, err := member.slot()
		if err != nil {
			return nil, team.Summary{}, fmt.Errorf("member %d: %w", i+1, err)
		}
		if err := builder.Add(slot); err != nil {
			return nil, team.Summary{}, fmt.Errorf("member %d: %w", i+1, err)
		}
	}

	report, err := team.AnalyzeBuilder(ctx, builder)
	if err != nil {
		return nil, team.Summary{}, err
	}
	return nil, report.Summary(), nil
}

func (s *Server) handleTypeMatchup(ctx context.Context, req *sdk.CallToolRequest, input TypeMatchupInput) (*sdk.CallToolResult, TypeMatchupOutput, error) {
	entry, err := s.entry(ctx, input)
	if err != nil {
		return nil, TypeMatchupOutput{}, err
	}

	eff, err := analysis.Defending(entry)
	if err != nil {
		return nil, TypeMatchupOutput{}, err
	}

	levels := make(map[string][]string)
	for lvl, types := range eff.ByLevel() {
		names := make([]string, len(types))
		for i, typ := range types {
			names[i] = typ.String()
		}
		levels[lvl.String()] = names
	}

	return nil, TypeMatchupOutput{
		Member: entry.String(),
		Levels: levels,
	}, nil
}
