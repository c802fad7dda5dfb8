package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/teamtype/pkg/typechart"
)

// Emojis indexes custom emojis by name. Each type is drawn as two half-width
// emojis named "<type>1" and "<type>2".
type Emojis map[string]*discordgo.Emoji

var ErrNoEmoji = errors.New("no matching emoji")

func NewEmojis(emojis []*discordgo.Emoji) Emojis {
	m := make(Emojis, len(emojis))
	for _, emoji := range emojis {
		m[emoji.Name] = emoji
	}
	return m
}

// guildEmojis returns the custom emojis of the guild an interaction came from.
func guildEmojis(sess *discordgo.Session, guildID string) Emojis {
	if sess == nil || sess.State == nil {
		return nil
	}
	guild, err := sess.State.Guild(guildID)
	if err != nil {
		return nil
	}
	return NewEmojis(guild.Emojis)
}

func (emojis Emojis) Emoji(name string) (string, error) {
	emoji1, ok := emojis[name+"1"]
	if !ok {
		return "", fmt.Errorf("could not find first emoji for resource %q: %w", name, ErrNoEmoji)
	}

	emoji2, ok := emojis[name+"2"]
	if !ok {
		return "", fmt.Errorf("could not find second emoji for resource %q: %w", name, ErrNoEmoji)
	}

	return fmt.Sprintf("<:%v:%v><:%v:%v>", emoji1.Name, emoji1.ID, emoji2.Name, emoji2.ID), nil
}

// Type renders a type as its emoji pair, or its name when the guild has none.
func (emojis Emojis) Type(typ typechart.Type) string {
	s, err := emojis.Emoji(strings.ToLower(typ.String()))
	if err != nil {
		return typ.String()
	}
	return s
}
