package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/teamtype/pkg/command"
	"github.com/notjagan/teamtype/pkg/config"
	"github.com/notjagan/teamtype/pkg/model"
)

type Bot struct {
	config   config.Config
	session  *discordgo.Session
	commands map[string]command.Command

	mu     sync.Mutex
	models map[string]*model.Model
}

func New(ctx context.Context, cfg config.Config) (*Bot, error) {
	cmds, err := command.All(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error while getting all commands for bot: %w", err)
	}

	return &Bot{
		config:   cfg,
		commands: cmds,
		models:   make(map[string]*model.Model),
	}, nil
}

func (bot *Bot) Close() {
	log.Println("Shutting down.")

	bot.mu.Lock()
	for _, mdl := range bot.models {
		err := mdl.Close()
		if err != nil {
			log.Printf("error while closing model: %v", err)
		}
	}
	bot.models = make(map[string]*model.Model)
	bot.mu.Unlock()

	if bot.session != nil {
		err := bot.session.Close()
		if err != nil {
			log.Printf("error while closing discord session: %v", err)
		}
	}
}

func (bot *Bot) addGuild(ctx context.Context, guild *discordgo.Guild) error {
	mdl, err := model.New(ctx, bot.config.DB.Path)
	if err != nil {
		return fmt.Errorf("error while instantiating model for guild %q: %w", guild.Name, err)
	}

	err = mdl.SetLanguageByLocale(ctx, discordgo.Locale(guild.PreferredLocale))
	if err != nil {
		mdl.Close()
		return fmt.Errorf("error while setting language: %w", err)
	}

	bot.mu.Lock()
	defer bot.mu.Unlock()
	if old, ok := bot.models[guild.ID]; ok {
		old.Close()
	}
	bot.models[guild.ID] = mdl

	return nil
}

func (bot *Bot) removeGuild(guild *discordgo.Guild) {
	bot.mu.Lock()
	defer bot.mu.Unlock()

	if mdl, ok := bot.models[guild.ID]; ok {
		err := mdl.Close()
		if err != nil {
			log.Printf("error while closing model for guild %q: %v", guild.ID, err)
		}
		delete(bot.models, guild.ID)
	}
}

var ErrNoMatchingModel = errors.New("no matching model")

func (bot *Bot) model(guild *discordgo.Guild) (*model.Model, error) {
	bot.mu.Lock()
	defer bot.mu.Unlock()

	mdl, ok := bot.models[guild.ID]
	if !ok {
		return nil, fmt.Errorf("could not find model for guild %q: %w", guild.Name, ErrNoMatchingModel)
	}

	return mdl, nil
}

func (bot *Bot) initialize(ctx context.Context) error {
	sess, err := discordgo.New("Bot " + bot.config.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to instantiate discord bot: %w", err)
	}
	bot.session = sess

	bot.session.AddHandler(func(_ *discordgo.Session, create *discordgo.GuildCreate) {
		err := bot.addGuild(ctx, create.Guild)
		if err != nil {
			log.Printf("failed to add guild %q: %v", create.Guild.Name, err)
		}
	})
	bot.session.AddHandler(func(_ *discordgo.Session, delete *discordgo.GuildDelete) {
		bot.removeGuild(delete.Guild)
	})
	bot.session.AddHandler(func(sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
		bot.dispatch(ctx, sess, interaction)
	})

	err = bot.session.Open()
	if err != nil {
		return fmt.Errorf("failed to start discord session: %w", err)
	}

	err = bot.registerCommands()
	if err != nil {
		return fmt.Errorf("error while registering commands: %w", err)
	}

	return nil
}

func (bot *Bot) Run(ctx context.Context) error {
	err := bot.initialize(ctx)
	if err != nil {
		bot.Close()
		return fmt.Errorf("error while initializing bot: %w", err)
	}

	log.Println("Hosting team analysis bot.")
	defer bot.Close()
	<-ctx.Done()

	return nil
}

func (bot *Bot) dispatch(ctx context.Context, sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
	if interaction.Type != discordgo.InteractionApplicationCommand &&
		interaction.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return
	}

	name := interaction.ApplicationCommandData().Name
	cmd, ok := bot.commands[name]
	if !ok {
		log.Printf("received unknown command %q", name)
		return
	}

	guild, err := sess.State.Guild(interaction.GuildID)
	if err != nil {
		log.Printf("could not find guild while executing command %q: %v", name, err)
		return
	}

	mdl, err := bot.model(guild)
	if err != nil {
		log.Printf("no model found for guild while executing command %q: %v", name, err)
		return
	}

	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		log.Printf("COMMAND %q in GUILD %q", name, guild.Name)
		err = cmd.Handle(ctx, mdl, sess, interaction)
	case discordgo.InteractionApplicationCommandAutocomplete:
		err = cmd.Autocomplete(ctx, mdl, sess, interaction)
	}
	if err != nil {
		log.Printf("error while executing command %q: %v", name, err)
	}
}

func (bot *Bot) registerCommands() error {
	for _, cmd := range bot.commands {
		_, err := bot.session.ApplicationCommandCreate(bot.session.State.User.ID, "", cmd.ApplicationCommand())
		if err != nil {
			return fmt.Errorf("failed to register command %q: %w", cmd.Name(), err)
		}
	}

	return nil
}
