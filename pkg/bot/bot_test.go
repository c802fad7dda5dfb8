package bot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/teamtype/pkg/config"
	"github.com/notjagan/teamtype/pkg/model"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()

	var cfg config.Config
	cfg.DB.Path = filepath.Join(t.TempDir(), "absent.sqlite3")
	return &Bot{
		config: cfg,
		models: make(map[string]*model.Model),
	}
}

func TestModelLookup(t *testing.T) {
	bot := newTestBot(t)
	guild := &discordgo.Guild{ID: "1", Name: "test"}

	if _, err := bot.model(guild); !errors.Is(err, ErrNoMatchingModel) {
		t.Errorf("model() error = %v, want ErrNoMatchingModel", err)
	}

	bot.removeGuild(guild)
	if len(bot.models) != 0 {
		t.Errorf("removeGuild added models: %v", bot.models)
	}
}

func TestAddGuildMissingDatabase(t *testing.T) {
	bot := newTestBot(t)
	guild := &discordgo.Guild{ID: "1", Name: "test"}

	if err := bot.addGuild(context.Background(), guild); err == nil {
		t.Fatal("expected error for missing database")
	}
	if _, err := bot.model(guild); !errors.Is(err, ErrNoMatchingModel) {
		t.Errorf("failed addGuild registered a model")
	}
}

func TestCloseWithoutSession(t *testing.T) {
	bot := newTestBot(t)
	bot.Close()
}
