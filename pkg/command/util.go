package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/teamtype/pkg/analysis"
	"github.com/notjagan/teamtype/pkg/model"
	"github.com/notjagan/teamtype/pkg/team"
	"github.com/notjagan/teamtype/pkg/typechart"
)

var ErrCommandFormat = errors.New("invalid command format")

func searchChoices[T model.Localizer](ctx context.Context, s searcher[T]) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	results, err := s.Search(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while searching for matching resources: %w", err)
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(results))
	for i, res := range results {
		name, err := res.LocalizedName(ctx)
		if err != nil {
			return nil, fmt.Errorf("error while getting localized name for resource: %w", err)
		}

		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: s.Value(res),
		}
	}

	return choices, nil
}

// prefixChoices prepends the already typed part of an option to every choice.
func prefixChoices(choices []*discordgo.ApplicationCommandOptionChoice, prefix string) []*discordgo.ApplicationCommandOptionChoice {
	for _, choice := range choices {
		choice.Name = prefix + choice.Name
		choice.Value = fmt.Sprintf("%s%v", prefix, choice.Value)
	}
	return choices
}

type efficacyNames struct {
	doubleStrong string
	strong       string
	neutral      string
	weak         string
	doubleWeak   string
	immune       string
}

func (names efficacyNames) of(lvl typechart.EfficacyLevel) string {
	switch lvl {
	case typechart.DoubleSuperEffective:
		return names.doubleStrong
	case typechart.SuperEffective:
		return names.strong
	case typechart.NormalEffective:
		return names.neutral
	case typechart.NotVeryEffective:
		return names.weak
	case typechart.DoubleNotVeryEffective:
		return names.doubleWeak
	default:
		return names.immune
	}
}

// efficaciesToFields lists the attacking types at each efficacy level. With
// includeAll, the single-step levels are shown even when empty.
func efficaciesToFields(
	eff typechart.Effectiveness,
	includeAll bool,
	names efficacyNames,
	emojis Emojis,
) []*discordgo.MessageEmbedField {
	groups := eff.ByLevel()

	fields := make([]*discordgo.MessageEmbedField, 0, len(typechart.Levels))
	for _, lvl := range typechart.Levels {
		types := groups[lvl]
		always := lvl != typechart.DoubleSuperEffective && lvl != typechart.DoubleNotVeryEffective
		if lvl == typechart.NormalEffective && !includeAll {
			continue
		}

		if len(types) > 0 {
			labels := make([]string, len(types))
			for i, typ := range types {
				labels[i] = emojis.Type(typ)
			}
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:  names.of(lvl),
				Value: strings.Join(labels, " "),
			})
		} else if includeAll && always {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:  names.of(lvl),
				Value: "_None_",
			})
		}
	}

	return fields
}

func countsField(name string, counts analysis.Counts, emojis Emojis) *discordgo.MessageEmbedField {
	ranked := team.Ranked(counts)
	if len(ranked) == 0 {
		return &discordgo.MessageEmbedField{Name: name, Value: "_None_", Inline: true}
	}

	lines := make([]string, len(ranked))
	for i, tc := range ranked {
		lines[i] = fmt.Sprintf("%s × %d", emojis.Type(tc.Type), tc.Count)
	}
	return &discordgo.MessageEmbedField{
		Name:   name,
		Value:  strings.Join(lines, "\n"),
		Inline: true,
	}
}

func candidatesValue(cands []analysis.Candidate, emojis Emojis, none string) string {
	if len(cands) == 0 {
		return none
	}

	lines := make([]string, len(cands))
	for i, c := range cands {
		labels := make([]string, len(c.Types))
		for j, typ := range c.Types {
			labels[j] = emojis.Type(typ)
		}
		lines[i] = fmt.Sprintf("%s mitigates %d", strings.Join(labels, " "), c.Mitigated)
	}
	return strings.Join(lines, "\n")
}

func reportEmbed(report *team.Report, emojis Emojis) *discordgo.MessageEmbed {
	members := make([]string, len(report.Roster))
	for i, entry := range report.Roster {
		members[i] = fmt.Sprintf("%d. %s", i+1, entry)
	}

	fields := []*discordgo.MessageEmbedField{
		countsField("Weaknesses", report.Matchups.Weaknesses, emojis),
		countsField("Resistances", report.Matchups.Resistances, emojis),
		countsField("Immunities", report.Matchups.Immunities, emojis),
	}

	ranking := report.Ranking
	if ranking.HasWeaknesses {
		fields = append(fields,
			&discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("Recommendations (most common weakness: %s)", ranking.MostCommon),
				Value: candidatesValue(ranking.Singles, emojis, analysis.NoSingleTypeAdvice),
			},
			&discordgo.MessageEmbedField{
				Name:  "Dual-Type Recommendations",
				Value: candidatesValue(ranking.Duals, emojis, analysis.NoDualTypeAdvice),
			},
		)
	} else {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Recommendations",
			Value: analysis.NoWeaknessesAdvice,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "Team Analysis",
		Description: strings.Join(members, "\n"),
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Team Rating: %s", report.Grade),
		},
	}
}
