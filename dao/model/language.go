package model

import "sort"

// languageCatalog is the closed set of languages a project may enable.
// Codes are ISO 639-1, with zh-CN/zh-TW as locale variants.
var languageCatalog = map[string]string{
	// European
	"uk": "Українська",
	"en": "English",
	"pl": "Polski",
	"de": "Deutsch",
	"fr": "Français",
	"es": "Español",
	"it": "Italiano",
	"pt": "Português",
	"nl": "Nederlands",
	"cs": "Čeština",
	"sk": "Slovenčina",
	"ro": "Română",
	"hu": "Magyar",
	"bg": "Български",
	"el": "Ελληνικά",
	"sv": "Svenska",
	"da": "Dansk",
	"no": "Norsk",
	"fi": "Suomi",

	// Slavic
	"ru": "Русский",
	"be": "Беларуская",
	"hr": "Hrvatski",
	"sr": "Српски",
	"sl": "Slovenščina",

	// Asian
	"zh-CN": "简体中文",
	"zh-TW": "繁體中文",
	"ja":    "日本語",
	"ko":    "한국어",
	"vi":    "Tiếng Việt",
	"th":    "ไทย",
	"hi":    "हिन्दी",
	"ar":    "العربية",
	"he":    "עברית",
	"tr":    "Türkçe",

	// Other
	"id": "Bahasa Indonesia",
	"ms": "Bahasa Melayu",
	"fa": "فارسی",
	"bn": "বাংলা",
	"ur": "اردو",
	"sw": "Kiswahili",
}

// ValidLanguage reports whether code is in the catalog.
func ValidLanguage(code string) bool {
	_, ok := languageCatalog[code]
	return ok
}

// LanguageName returns the display name for code.
func LanguageName(code string) (string, bool) {
	name, ok := languageCatalog[code]
	return name, ok
}

// LanguageCodes returns all catalog codes in sorted order.
func LanguageCodes() []string {
	codes := make([]string, 0, len(languageCatalog))
	for code := range languageCatalog {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LanguageInfo is the catalog entry exposed by the listing endpoint.
type LanguageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages returns the full catalog sorted by code.
func Languages() []LanguageInfo {
	codes := LanguageCodes()
	infos := make([]LanguageInfo, 0, len(codes))
	for _, code := range codes {
		infos = append(infos, LanguageInfo{Code: code, Name: languageCatalog[code]})
	}
	return infos
}
