// Package locales holds the embedded translations of the application and
// resolves translation keys for the active language.
package locales

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// DefaultLanguage is used whenever a key is missing in the active language.
const DefaultLanguage = "en"

//go:embed en/translations.json
//go:embed cs/translations.json
//go:embed de/translations.json
var translationsFS embed.FS

var (
	mutex     sync.RWMutex
	bundle    = i18n.NewBundle(language.English)
	loaded    = map[string]bool{}
	localizer *i18n.Localizer
	fallback  *i18n.Localizer
	current   string
)

// LoadTranslations loads the translation file for the specified language
// and makes it the active one. English is always loaded alongside so it can
// serve as fallback for missing keys.
func LoadTranslations(lang string) error {
	lang = strings.ToLower(strings.TrimSpace(lang))

	mutex.Lock()
	defer mutex.Unlock()

	if err := addLanguage(DefaultLanguage); err != nil {
		return err
	}
	if err := addLanguage(lang); err != nil {
		return err
	}

	localizer = i18n.NewLocalizer(bundle, lang)
	fallback = i18n.NewLocalizer(bundle, DefaultLanguage)
	current = lang
	return nil
}

// addLanguage parses lang/translations.json into the bundle. Caller holds mutex.
func addLanguage(lang string) error {
	if loaded[lang] {
		return nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid language code %q: %w", lang, err)
	}

	data, err := translationsFS.ReadFile(lang + "/translations.json")
	if err != nil {
		return fmt.Errorf("failed to load translation file: %w", err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse translation file for %s: %w", lang, err)
	}

	messages := make([]*i18n.Message, 0, len(entries))
	for id, text := range entries {
		messages = append(messages, &i18n.Message{ID: id, Other: text})
	}
	if err := bundle.AddMessages(tag, messages...); err != nil {
		return fmt.Errorf("failed to register translations for %s: %w", lang, err)
	}

	loaded[lang] = true
	return nil
}

// Translate returns the translated string for the given key.
// If the translation is not found, returns the key itself.
func Translate(key string) string {
	return Translatef(key, nil)
}

// Translatef is Translate with template data, e.g. {"Code": 1} for "{{.Code}}".
func Translatef(key string, data map[string]interface{}) string {
	mutex.RLock()
	defer mutex.RUnlock()

	for _, l := range []*i18n.Localizer{localizer, fallback} {
		if l == nil {
			continue
		}
		text, err := l.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
		if err == nil {
			return text
		}
	}
	return key
}

// CurrentLanguage returns the code of the active language, or "" before
// any translations were loaded.
func CurrentLanguage() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return current
}

// GetAvailableLanguages returns a list of all available languages
// from the embedded filesystem. Returns ["en"] as fallback on error.
func GetAvailableLanguages() []string {
	var langs []string
	entries, err := translationsFS.ReadDir(".")
	if err != nil {
		return []string{DefaultLanguage}
	}
	for _, entry := range entries {
		if entry.IsDir() {
			langs = append(langs, entry.Name())
		}
	}
	sort.Strings(langs)
	return langs
}

// IsSupported reports whether translations exist for lang.
func IsSupported(lang string) bool {
	for _, l := range GetAvailableLanguages() {
		if strings.EqualFold(l, lang) {
			return true
		}
	}
	return false
}
