package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/teamtype/pkg/model"
	"github.com/notjagan/teamtype/pkg/team"
	"github.com/notjagan/teamtype/pkg/typechart"
)

type teamOptions struct {
	Slot1 *discordField[string] `option:"slot_1"`
	Slot2 *discordField[string] `option:"slot_2"`
	Slot3 *discordField[string] `option:"slot_3"`
	Slot4 *discordField[string] `option:"slot_4"`
	Slot5 *discordField[string] `option:"slot_5"`
	Slot6 *discordField[string] `option:"slot_6"`
}

func (opt *teamOptions) slots() []*discordField[string] {
	return []*discordField[string]{opt.Slot1, opt.Slot2, opt.Slot3, opt.Slot4, opt.Slot5, opt.Slot6}
}

func (opt *teamOptions) focused() (*discordField[string], bool) {
	for _, slot := range opt.slots() {
		if slot != nil && slot.Focused {
			return slot, true
		}
	}
	return nil, false
}

// userError reports whether err stems from what the user typed rather than
// from the bot itself.
func userError(err error) bool {
	return errors.Is(err, team.ErrSlotFormat) ||
		errors.Is(err, team.ErrDuplicateType) ||
		errors.Is(err, team.ErrEmptyRoster) ||
		errors.Is(err, team.ErrRosterFull) ||
		errors.Is(err, typechart.ErrUnknownType) ||
		errors.Is(err, model.ErrNoPokemon)
}

func teamResponse(ctx context.Context, dex team.Dex, opt *teamOptions, emojis Emojis) (*discordgo.InteractionResponseData, error) {
	builder := team.NewBuilder(dex)
	for _, slot := range opt.slots() {
		if slot == nil {
			continue
		}

		err := builder.AddString(slot.Value)
		if userError(err) {
			return &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("Invalid slot %q: %v", slot.Value, err),
			}, nil
		} else if err != nil {
			return nil, fmt.Errorf("error while adding slot: %w", err)
		}
	}

	report, err := team.AnalyzeBuilder(ctx, builder)
	if userError(err) {
		return &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Could not analyze team: %v", err),
		}, nil
	} else if err != nil {
		return nil, fmt.Errorf("error while analyzing team: %w", err)
	}

	embed := reportEmbed(report, emojis)
	abilities, err := abilitiesField(ctx, dex, builder.Slots())
	if err != nil {
		return nil, fmt.Errorf("error while describing abilities: %w", err)
	}
	if abilities != nil {
		embed.Fields = append(embed.Fields, abilities)
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, nil
}

// abilityDescriber is a dex that can also describe the abilities of a Pokemon.
type abilityDescriber interface {
	AbilityNotes(ctx context.Context, pokemon string) ([]string, error)
}

// abilitiesField lists the abilities of every Pokemon slot, or returns nil when
// there is nothing to list.
func abilitiesField(ctx context.Context, dex team.Dex, slots []team.Slot) (*discordgo.MessageEmbedField, error) {
	describer, ok := dex.(abilityDescriber)
	if !ok {
		return nil, nil
	}

	var lines []string
	for _, slot := range slots {
		if slot.Pokemon == "" {
			continue
		}
		notes, err := describer.AbilityNotes(ctx, slot.Pokemon)
		if err != nil {
			return nil, err
		}
		if len(notes) > 0 {
			lines = append(lines, fmt.Sprintf("%s: %s", slot.Pokemon, strings.Join(notes, ", ")))
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	return &discordgo.MessageEmbedField{
		Name:  "Abilities",
		Value: strings.Join(lines, "\n"),
	}, nil
}

// slotChoices completes a partially typed slot: Pokemon names after "@", type
// names otherwise.
func slotChoices(ctx context.Context, mdl *model.Model, value string, limit int) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	if strings.ContainsAny(value, "+!") {
		return nil, nil
	}

	if name, ok := strings.CutPrefix(value, "@"); ok {
		s := pokemonSearcher{
			model:  mdl,
			prefix: name,
			limit:  limit,
		}
		choices, err := searchChoices[*model.Pokemon](ctx, s)
		if err != nil {
			return nil, err
		}
		return prefixChoices(choices, "@"), nil
	}

	var head string
	prefix := value
	if i := strings.LastIndex(value, "/"); i >= 0 {
		head, prefix = value[:i+1], value[i+1:]
	}

	s := typeSearcher{
		model:  mdl,
		prefix: strings.TrimSpace(prefix),
		limit:  limit,
	}
	choices, err := searchChoices[*model.Type](ctx, s)
	if err != nil {
		return nil, err
	}
	return prefixChoices(choices, head), nil
}

func (builder *Builder) team(ctx context.Context) (Command, error) {
	options := make([]*discordgo.ApplicationCommandOption, team.MaxSize)
	for i := range options {
		options[i] = &discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         fmt.Sprintf("slot_%d", i+1),
			Description:  "Type combination (Fire/Flying) or @pokemon, optionally +ability or !Immune",
			Required:     i == 0,
			Autocomplete: true,
		}
	}

	return command[teamOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "team",
			Description: "Analyze the type weaknesses of a team and get recommendations.",
			Options:     options,
		},
		handle: func(
			ctx context.Context,
			mdl *model.Model,
			sess *discordgo.Session,
			interaction *discordgo.InteractionCreate,
			opt *teamOptions,
		) (*discordgo.InteractionResponseData, error) {
			return teamResponse(ctx, mdl, opt, guildEmojis(sess, interaction.GuildID))
		},
		autocomplete: func(
			ctx context.Context,
			mdl *model.Model,
			sess *discordgo.Session,
			interaction *discordgo.InteractionCreate,
			opt *teamOptions,
		) ([]*discordgo.ApplicationCommandOptionChoice, error) {
			slot, ok := opt.focused()
			if !ok {
				return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
			}

			return slotChoices(ctx, mdl, slot.Value, builder.config.AutocompleteLimit)
		},
	}, nil
}
