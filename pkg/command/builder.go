package command

import (
	"context"
	"fmt"

	"github.com/notjagan/teamtype/pkg/config"
	"github.com/notjagan/teamtype/pkg/model"
)

type commandFunc func(*Builder, context.Context) (Command, error)

type Builder struct {
	model *model.Model

	config config.Config
	funcs  []commandFunc
}

func NewBuilder(ctx context.Context, mdl *model.Model, cfg config.Config) (*Builder, error) {
	err := mdl.SetLanguageByLocalizationCode(ctx, model.LocalizationCode(cfg.Language))
	if err != nil {
		return nil, fmt.Errorf("error while setting builder language: %w", err)
	}

	return &Builder{
		model:  mdl,
		config: cfg,
		funcs: []commandFunc{
			(*Builder).language,
			(*Builder).team,
			(*Builder).weak,
		},
	}, nil
}

func (builder *Builder) Close(ctx context.Context) error {
	err := builder.model.Close()
	if err != nil {
		return fmt.Errorf("error while closing model for command builder: %w", err)
	}

	return nil
}

func (builder *Builder) all(ctx context.Context) (map[string]Command, error) {
	commands := make(map[string]Command, len(builder.funcs))

	for _, f := range builder.funcs {
		cmd, err := f(builder, ctx)
		if err != nil {
			return nil, fmt.Errorf("error while creating command: %w", err)
		}
		commands[cmd.Name()] = cmd
	}

	return commands, nil
}

func All(ctx context.Context, cfg config.Config) (map[string]Command, error) {
	mdl, err := model.New(ctx, cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("error while creating model for command builder: %w", err)
	}

	builder, err := NewBuilder(ctx, mdl, cfg)
	if err != nil {
		mdl.Close()
		return nil, err
	}
	defer builder.Close(ctx)

	return builder.all(ctx)
}
