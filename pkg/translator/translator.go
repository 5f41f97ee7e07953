package translator

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

var errNotInitialized = errors.New("translator is not initialized")

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	// List files in the translation folder
	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".toml") {
			continue
		}
		filepath := fmt.Sprintf("%s/%s", cfg.TranslationFolder, f.Name())

		// Load the message file into the Translator bundle
		if _, err := Translator.LoadMessageFile(filepath); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}

	if len(cfg.SupportedLanguages) > 0 {
		loaded := map[string]bool{}
		for _, tag := range Translator.LanguageTags() {
			base, _ := tag.Base()
			loaded[base.String()] = true
		}
		for _, lang := range cfg.SupportedLanguages {
			if !loaded[lang] {
				zap.L().Warn("no translation loaded for supported language", zap.String("lang", lang))
			}
		}
	}
}

// Localize renders messageID in lang, falling back to English. data feeds
// the message template and may be nil.
func Localize(lang, messageID string, data map[string]interface{}) (string, error) {
	if Translator == nil {
		return "", errNotInitialized
	}

	localizer := i18n.NewLocalizer(Translator, lang, LanguageEn)
	return localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
}
