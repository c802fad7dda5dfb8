package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type LocalizationCode string

const (
	LocalizationCodeEnglish           LocalizationCode = "en"
	LocalizationCodeFrench            LocalizationCode = "fr"
	LocalizationCodeGerman            LocalizationCode = "de"
	LocalizationCodeItalian           LocalizationCode = "it"
	LocalizationCodeSpanish           LocalizationCode = "es"
	LocalizationCodeJapanese          LocalizationCode = "ja"
	LocalizationCodeKorean            LocalizationCode = "ko"
	LocalizationCodeChineseSimplified LocalizationCode = "zh-Hans"
	LocalizationCodeChineseTradition  LocalizationCode = "zh-Hant"
)

var AllLocalizationCodes = []LocalizationCode{
	LocalizationCodeEnglish,
	LocalizationCodeFrench,
	LocalizationCodeGerman,
	LocalizationCodeItalian,
	LocalizationCodeSpanish,
	LocalizationCodeJapanese,
	LocalizationCodeKorean,
	LocalizationCodeChineseSimplified,
	LocalizationCodeChineseTradition,
}

var localeCodes = map[discordgo.Locale]LocalizationCode{
	discordgo.EnglishUS: LocalizationCodeEnglish,
	discordgo.EnglishGB: LocalizationCodeEnglish,
	discordgo.French:    LocalizationCodeFrench,
	discordgo.German:    LocalizationCodeGerman,
	discordgo.Italian:   LocalizationCodeItalian,
	discordgo.SpanishES: LocalizationCodeSpanish,
	discordgo.Japanese:  LocalizationCodeJapanese,
	discordgo.Korean:    LocalizationCodeKorean,
	discordgo.ChineseCN: LocalizationCodeChineseSimplified,
	discordgo.ChineseTW: LocalizationCodeChineseTradition,
}

var ErrUnsupportedLocale = errors.New("unsupported locale")

func LocaleToLocalizationCode(locale discordgo.Locale) (LocalizationCode, error) {
	code, ok := localeCodes[locale]
	if !ok {
		return "", fmt.Errorf("no localization code for locale %q: %w", locale, ErrUnsupportedLocale)
	}
	return code, nil
}

type Language struct {
	model *Model

	ID     int              `db:"id"`
	ISO639 LocalizationCode `db:"iso639"`
}

func (lang *Language) LocalizedName(ctx context.Context) (string, error) {
	return lang.model.localizedLanguageName(ctx, lang)
}

// SetLanguageByLocale picks the language for a Discord locale, falling back to
// English.
func (m *Model) SetLanguageByLocale(ctx context.Context, locale discordgo.Locale) error {
	code, err := LocaleToLocalizationCode(locale)
	if err != nil {
		code = LocalizationCodeEnglish
	}

	return m.SetLanguageByLocalizationCode(ctx, code)
}
