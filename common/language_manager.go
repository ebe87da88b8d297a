// common/language_manager.go

package common

import (
	"strings"

	"HelloWorld/locales"

	"github.com/jeandeaual/go-locale"
)

// LanguageItem pairs a language code with its display name.
type LanguageItem struct {
	Code string
	Name string
}

// systemLanguage returns the two-letter OS language, "" if unknown.
var systemLanguage = func() string {
	lang, err := locale.GetLanguage()
	if err != nil {
		CaptureEarlyLog(SeverityWarning, "Failed to detect system language: %v", err)
		return ""
	}
	lang = strings.ToLower(lang)
	if len(lang) > 2 {
		lang = lang[:2]
	}
	return lang
}

type languageCandidate struct {
	source string
	code   string
}

// DetectAndSetLanguage sets the application language based on the following priorities:
//  1. override (command line), if supported
//  2. the configured language, if supported
//  3. the system language, if supported
//  4. English
//
// The chosen language is loaded and written back to the configuration.
func DetectAndSetLanguage(configMgr *ConfigManager, override string, logger *Logger) string {
	supportedLangs := locales.GetAvailableLanguages()
	logger.Info("Supported languages: %v", supportedLangs)

	candidates := []languageCandidate{{"command line", override}}
	if configMgr != nil {
		candidates = append(candidates, languageCandidate{"configuration", configMgr.GetGlobalConfig().Language})
	}
	candidates = append(candidates, languageCandidate{"system", systemLanguage()})

	for _, c := range candidates {
		code := strings.ToLower(strings.TrimSpace(c.code))
		if code == "" {
			continue
		}
		if !locales.IsSupported(code) {
			logger.Warning("Language '%s' from %s is not supported", code, c.source)
			continue
		}
		if err := locales.LoadTranslations(code); err != nil {
			logger.Error("Failed to load translations for %s: %v", code, err)
			continue
		}
		logger.Info("Using %s language: %s", c.source, code)
		saveLanguage(configMgr, code, logger)
		return code
	}

	logger.Info("Using fallback language: %s", locales.DefaultLanguage)
	if err := locales.LoadTranslations(locales.DefaultLanguage); err != nil {
		logger.Error("Failed to load fallback translations: %v", err)
	}
	saveLanguage(configMgr, locales.DefaultLanguage, logger)
	return locales.DefaultLanguage
}

func saveLanguage(configMgr *ConfigManager, code string, logger *Logger) {
	if configMgr == nil {
		return
	}
	if err := configMgr.SetLanguage(code); err != nil {
		logger.Error("Failed to save language config: %v", err)
	}
}

// GetAvailableLanguages returns the supported languages with display names.
func GetAvailableLanguages() []LanguageItem {
	var items []LanguageItem
	for _, code := range locales.GetAvailableLanguages() {
		name := locales.Translate("settings.lang." + code)
		if strings.HasPrefix(name, "settings.lang.") {
			name = code
		}
		items = append(items, LanguageItem{Code: code, Name: name})
	}
	return items
}
