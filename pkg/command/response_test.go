package command

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/teamtype/pkg/analysis"
	"github.com/notjagan/teamtype/pkg/model"
	"github.com/notjagan/teamtype/pkg/typechart"
)

type fakeDex map[string]analysis.Entry

func (dex fakeDex) Entry(_ context.Context, pokemon string) (analysis.Entry, error) {
	entry, ok := dex[strings.ToLower(pokemon)]
	if !ok {
		return analysis.Entry{}, model.ErrNoPokemon
	}
	return entry, nil
}

// describingDex also knows the abilities of its Pokemon.
type describingDex struct {
	fakeDex
	notes map[string][]string
}

func (dex describingDex) AbilityNotes(_ context.Context, pokemon string) ([]string, error) {
	notes, ok := dex.notes[strings.ToLower(pokemon)]
	if !ok {
		return nil, model.ErrNoPokemon
	}
	return notes, nil
}

func field(s string) *discordField[string] {
	return &discordField[string]{Value: s}
}

func fieldNamed(fields []*discordgo.MessageEmbedField, name string) *discordgo.MessageEmbedField {
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func TestEmojis(t *testing.T) {
	emojis := NewEmojis([]*discordgo.Emoji{
		{ID: "1", Name: "fire1"},
		{ID: "2", Name: "fire2"},
		{ID: "3", Name: "water1"},
	})

	if got := emojis.Type(typechart.Fire); got != "<:fire1:1><:fire2:2>" {
		t.Errorf("Type(Fire) = %q", got)
	}
	if got := emojis.Type(typechart.Water); got != "Water" {
		t.Errorf("Type(Water) = %q, want fallback name", got)
	}
	if got := Emojis(nil).Type(typechart.Ghost); got != "Ghost" {
		t.Errorf("nil Emojis Type(Ghost) = %q", got)
	}
}

func TestPrefixChoices(t *testing.T) {
	choices := prefixChoices([]*discordgo.ApplicationCommandOptionChoice{
		{Name: "Flying", Value: "flying"},
	}, "Fire/")

	if choices[0].Name != "Fire/Flying" || choices[0].Value != "Fire/flying" {
		t.Errorf("choice = %+v", choices[0])
	}
}

func TestEfficaciesToFields(t *testing.T) {
	eff, err := analysis.Effectiveness(analysis.NewEntry(typechart.Fire, typechart.Flying))
	if err != nil {
		t.Fatal(err)
	}

	fields := efficaciesToFields(eff, false, weakNames, nil)
	want := map[string]string{
		"Weaknesses (4x)":     "Rock",
		"Weaknesses (2x)":     "Electric Water",
		"Resistances (0.5x)":  "Fairy Fighting Fire Steel",
		"Resistances (0.25x)": "Bug Grass",
		"Immunities":          "Ground",
	}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for name, value := range want {
		f := fieldNamed(fields, name)
		if f == nil {
			t.Errorf("missing field %q", name)
			continue
		}
		if f.Value != value {
			t.Errorf("field %q = %q, want %q", name, f.Value, value)
		}
	}

}

func TestEfficaciesToFieldsIncludeAll(t *testing.T) {
	eff, err := analysis.Effectiveness(analysis.NewEntry(typechart.Normal, 0))
	if err != nil {
		t.Fatal(err)
	}

	fields := efficaciesToFields(eff, true, weakNames, nil)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	want := []string{"Weaknesses (2x)", "Neutral (1x)", "Resistances (0.5x)", "Immunities"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("fields = %v, want %v", names, want)
	}
	if fields[2].Value != "_None_" {
		t.Errorf("resistances = %q, want _None_", fields[2].Value)
	}
	if fields[3].Value != "Ghost" {
		t.Errorf("immunities = %q, want Ghost", fields[3].Value)
	}
}

func TestWeakResponse(t *testing.T) {
	data, err := weakResponse(&weakOptions{
		Type1:  discordField[string]{Value: "ghost"},
		Type2:  field("poison"),
		Immune: field("ground"),
	}, nil)
	if err != nil {
		t.Fatalf("weakResponse: %v", err)
	}
	if len(data.Embeds) != 1 {
		t.Fatalf("got %d embeds, want 1", len(data.Embeds))
	}

	embed := data.Embeds[0]
	if embed.Title != "Ghost Poison" {
		t.Errorf("Title = %q", embed.Title)
	}
	if !strings.Contains(embed.Description, "{Ground}") {
		t.Errorf("Description = %q, want immunity listed", embed.Description)
	}
	immune := fieldNamed(embed.Fields, "Immunities")
	if immune == nil || immune.Value != "Fighting Ground Normal" {
		t.Errorf("Immunities field = %+v", immune)
	}
	if weak := fieldNamed(embed.Fields, "Weaknesses (2x)"); weak == nil || weak.Value != "Dark Ghost Psychic" {
		t.Errorf("Weaknesses field = %+v", weak)
	}
}

func TestWeakResponseInvalidType(t *testing.T) {
	data, err := weakResponse(&weakOptions{Type1: discordField[string]{Value: "Sound"}}, nil)
	if err != nil {
		t.Fatalf("weakResponse: %v", err)
	}
	if len(data.Embeds) != 0 || !strings.HasPrefix(data.Content, "Invalid type") {
		t.Errorf("data = %+v, want invalid type message", data)
	}
}

func TestTeamResponse(t *testing.T) {
	dex := fakeDex{
		"charizard": analysis.NewEntry(typechart.Fire, typechart.Flying),
	}

	data, err := teamResponse(context.Background(), dex, &teamOptions{
		Slot1: field("@Charizard"),
		Slot3: field("Grass/Poison"),
		Slot6: field("Water"),
	}, nil)
	if err != nil {
		t.Fatalf("teamResponse: %v", err)
	}
	if len(data.Embeds) != 1 {
		t.Fatalf("got %d embeds, content %q", len(data.Embeds), data.Content)
	}

	embed := data.Embeds[0]
	if embed.Description != "1. Fire/Flying\n2. Grass/Poison\n3. Water" {
		t.Errorf("Description = %q", embed.Description)
	}
	if embed.Footer == nil || embed.Footer.Text != "Team Rating: Below Average" {
		t.Errorf("Footer = %+v", embed.Footer)
	}
	rec := fieldNamed(embed.Fields, "Recommendations (most common weakness: Electric)")
	if rec == nil {
		t.Fatalf("missing recommendations field in %+v", embed.Fields)
	}
	if !strings.HasPrefix(rec.Value, "Ground mitigates") {
		t.Errorf("recommendations = %q", rec.Value)
	}
	weak := fieldNamed(embed.Fields, "Weaknesses")
	if weak == nil || !strings.HasPrefix(weak.Value, "Electric × 2\nRock × 2\n") {
		t.Errorf("weaknesses = %+v", weak)
	}
}

func TestTeamResponseAbilities(t *testing.T) {
	dex := describingDex{
		fakeDex: fakeDex{
			"gengar": analysis.NewEntry(typechart.Ghost, typechart.Poison),
			"ditto":  analysis.NewEntry(typechart.Normal, 0),
		},
		notes: map[string][]string{
			"gengar": {"Levitate immune to {Ground}", "Cursed Body (hidden)"},
			"ditto":  {},
		},
	}

	data, err := teamResponse(context.Background(), dex, &teamOptions{
		Slot1: field("@Gengar"),
		Slot2: field("Water"),
		Slot3: field("@Ditto"),
	}, nil)
	if err != nil {
		t.Fatalf("teamResponse: %v", err)
	}
	if len(data.Embeds) != 1 {
		t.Fatalf("got %d embeds, content %q", len(data.Embeds), data.Content)
	}

	abilities := fieldNamed(data.Embeds[0].Fields, "Abilities")
	want := "gengar: Levitate immune to {Ground}, Cursed Body (hidden)"
	if abilities == nil || abilities.Value != want {
		t.Errorf("abilities = %+v, want %q", abilities, want)
	}

	data, err = teamResponse(context.Background(), dex, &teamOptions{Slot1: field("Fire")}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f := fieldNamed(data.Embeds[0].Fields, "Abilities"); f != nil {
		t.Errorf("type-only team has abilities field %+v", f)
	}
}

func TestTeamResponseUserErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  teamOptions
	}{
		{name: "unknown type", opt: teamOptions{Slot1: field("Sound")}},
		{name: "duplicate type", opt: teamOptions{Slot1: field("Fire/Fire")}},
		{name: "unknown pokemon", opt: teamOptions{Slot1: field("@missingno")}},
		{name: "empty roster", opt: teamOptions{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := teamResponse(context.Background(), fakeDex{}, &tt.opt, nil)
			if err != nil {
				t.Fatalf("teamResponse: %v", err)
			}
			if data.Content == "" || len(data.Embeds) != 0 {
				t.Errorf("data = %+v, want a plain error message", data)
			}
		})
	}
}
