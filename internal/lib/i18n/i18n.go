// Package i18n renders response messages in the language the client asks
// for with Accept-Language.
package i18n

import (
	"embed"
	"fmt"
	"net/http"
	"slices"

	"eventsAPI/internal/models"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

var localeFiles = []string{"active.en.toml", "active.ru.toml"}

type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// New loads the embedded translations. A default locale without a catalog
// falls back to English.
func New(defaultLocale string) (*Translator, error) {
	const op = "lib.i18n.New"

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("%s: load %s: %w", op, file, err)
		}
	}

	tag := language.English
	if parsed, err := language.Parse(defaultLocale); err == nil && slices.Contains(bundle.LanguageTags(), parsed) {
		tag = parsed
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}, nil
}

// T renders key for the given locale list (an Accept-Language value works).
// Unknown keys come back as the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := make([]string, 0, 2)
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}

	return msg
}

func (t *Translator) Message(r *http.Request, key string, data map[string]any) string {
	return t.T(r.Header.Get("Accept-Language"), key, data)
}

// ID is the template data of messages mentioning a single id.
func ID(id int64) map[string]any {
	return map[string]any{"ID": id}
}

// KindKey fills the %s of a member-kind specific message id: guests are
// users of the books service, participants are its authors.
//
//	KindKey(models.KindGuest, "%s_not_found") == "user_not_found"
func KindKey(kind models.MemberKind, format string) string {
	noun := "user"
	if kind == models.KindParticipant {
		noun = "author"
	}
	return fmt.Sprintf(format, noun)
}
