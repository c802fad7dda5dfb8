package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/teamtype/pkg/analysis"
	"github.com/notjagan/teamtype/pkg/model"
	"github.com/notjagan/teamtype/pkg/typechart"
)

type weakOptions struct {
	Type1  discordField[string]  `option:"type_1"`
	Type2  *discordField[string] `option:"type_2"`
	Immune *discordField[string] `option:"immune"`
}

var weakNames = efficacyNames{
	doubleStrong: "Weaknesses (4x)",
	strong:       "Weaknesses (2x)",
	neutral:      "Neutral (1x)",
	weak:         "Resistances (0.5x)",
	doubleWeak:   "Resistances (0.25x)",
	immune:       "Immunities",
}

func (opt *weakOptions) entry() (analysis.Entry, error) {
	primary, err := typechart.Parse(opt.Type1.Value)
	if err != nil {
		return analysis.Entry{}, err
	}

	var secondary typechart.Type
	if opt.Type2 != nil {
		secondary, err = typechart.Parse(opt.Type2.Value)
		if err != nil {
			return analysis.Entry{}, err
		}
	}

	var immune []typechart.Type
	if opt.Immune != nil {
		for _, name := range strings.Split(opt.Immune.Value, ",") {
			typ, err := typechart.Parse(name)
			if err != nil {
				return analysis.Entry{}, err
			}
			immune = append(immune, typ)
		}
	}

	return analysis.NewEntry(primary, secondary, immune...), nil
}

func weakResponse(opt *weakOptions, emojis Emojis) (*discordgo.InteractionResponseData, error) {
	entry, err := opt.entry()
	if err != nil {
		return &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Invalid type: %v", err),
		}, nil
	}

	eff, err := analysis.Defending(entry)
	if err != nil {
		return nil, fmt.Errorf("error while getting efficacies for %v: %w", entry, err)
	}

	title := []string{emojis.Type(entry.Primary)}
	if entry.Secondary != 0 && entry.Secondary != entry.Primary {
		title = append(title, emojis.Type(entry.Secondary))
	}

	description := "Defensive type chart"
	if entry.Immunities.Len() > 0 {
		description = fmt.Sprintf("%s, immune to %v", description, entry.Immunities)
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       strings.Join(title, " "),
				Description: description,
				Fields:      efficaciesToFields(eff, false, weakNames, emojis),
			},
		},
	}, nil
}

func (builder *Builder) weak(ctx context.Context) (Command, error) {
	return command[weakOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "weak",
			Description: "View type chart against a defending type combination.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "type_1",
					Description:  "Name of the first type",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "type_2",
					Description:  "Name of the second type",
					Required:     false,
					Autocomplete: true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "immune",
					Description:  "Comma separated types granted immunity by an ability",
					Required:     false,
					Autocomplete: true,
				},
			},
		},
		handle: func(
			ctx context.Context,
			mdl *model.Model,
			sess *discordgo.Session,
			interaction *discordgo.InteractionCreate,
			opt *weakOptions,
		) (*discordgo.InteractionResponseData, error) {
			return weakResponse(opt, guildEmojis(sess, interaction.GuildID))
		},
		autocomplete: func(
			ctx context.Context,
			mdl *model.Model,
			sess *discordgo.Session,
			interaction *discordgo.InteractionCreate,
			opt *weakOptions,
		) ([]*discordgo.ApplicationCommandOptionChoice, error) {
			var head, prefix string
			switch {
			case opt.Type1.Focused:
				prefix = opt.Type1.Value
			case opt.Type2 != nil && opt.Type2.Focused:
				prefix = opt.Type2.Value
			case opt.Immune != nil && opt.Immune.Focused:
				prefix = opt.Immune.Value
				if i := strings.LastIndex(prefix, ","); i >= 0 {
					head, prefix = prefix[:i+1], prefix[i+1:]
				}
			default:
				return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
			}

			s := typeSearcher{
				model:  mdl,
				prefix: strings.TrimSpace(prefix),
				limit:  builder.config.AutocompleteLimit,
			}
			choices, err := searchChoices[*model.Type](ctx, s)
			if err != nil {
				return nil, err
			}
			return prefixChoices(choices, head), nil
		},
	}, nil
}
