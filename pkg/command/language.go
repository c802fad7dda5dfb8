package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/teamtype/pkg/model"
)

type languageOptions struct {
	LocalizationCode *string `option:"language"`
}

func (builder *Builder) language(ctx context.Context) (Command, error) {
	s := languageSearcher{model: builder.model}
	langChoices, err := searchChoices[*model.Language](ctx, s)
	if err != nil {
		return nil, fmt.Errorf("could not get available language choices: %w", err)
	}

	return command[languageOptions]{
		applicationCommand: &discordgo.ApplicationCommand{
			Name:        "language",
			Description: "Get/set the language used for Pokemon and type names.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "language",
					Description: "Language to switch to",
					Required:    false,
					Choices:     langChoices,
				},
			},
		},
		handle: func(
			ctx context.Context,
			mdl *model.Model,
			sess *discordgo.Session,
			interaction *discordgo.InteractionCreate,
			opt *languageOptions,
		) (*discordgo.InteractionResponseData, error) {
			if opt.LocalizationCode == nil {
				lang := mdl.Language()
				if lang == nil {
					return nil, model.ErrUnsetLanguage
				}
				name, err := lang.LocalizedName(ctx)
				if err != nil {
					return nil, fmt.Errorf("could not localize current language name: %w", err)
				}

				return &discordgo.InteractionResponseData{
					Content: fmt.Sprintf("Language is currently %q.", name),
				}, nil
			}

			err := mdl.SetLanguageByLocalizationCode(ctx, model.LocalizationCode(*opt.LocalizationCode))
			if err != nil {
				return nil, fmt.Errorf("error while changing language: %w", err)
			}

			return &discordgo.InteractionResponseData{
				Content: "Language successfully changed.",
			}, nil
		},
	}, nil
}
