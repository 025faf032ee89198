// Package i18n renders strength tiers, suggestions and API messages in the
// language requested by the client. Translations are embedded YAML files
// loaded once into a go-i18n bundle; English is the fallback.
package i18n

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/velora-app/velora-api/strength"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var bundle *i18n.Bundle
var initOnce sync.Once

// Init loads every embedded locale. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

		files, err := fs.ReadDir(localeFS, "locales")
		if err != nil {
			log.Errorf("Failed to list embedded locales: %v", err)
			return
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			data, err := localeFS.ReadFile("locales/" + f.Name())
			if err != nil {
				log.Errorf("Failed to read locale %s: %v", f.Name(), err)
				continue
			}
			if _, err = bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
				log.Errorf("Failed to parse locale %s: %v", f.Name(), err)
			}
		}
	})
}

// T translates messageID for lang, which may be a raw Accept-Language value.
// Unknown ids are returned unchanged.
func T(lang string, messageID string) string {
	Init()
	localizer := i18n.NewLocalizer(bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

func LevelLabel(lang string, level strength.Level) string {
	return T(lang, "strength."+level.String())
}

// Suggestions localizes the suggestions carried by res. A result produced by a
// policy that emits no suggestions stays empty.
func Suggestions(lang string, res strength.Result) []string {
	result := make([]string, 0, len(res.Suggestions))
	if len(res.Suggestions) == 0 {
		return result
	}
	for _, c := range res.Unmet {
		result = append(result, T(lang, "suggestion."+string(c)))
	}
	return result
}
