package guesser

import "strings"

// Language is one registry entry: ISO 639-1 and 639-3 codes plus an English
// display name. Scripts that map to a single language reuse that language's
// alpha-3 code, so every identifier the detector can emit resolves here.
type Language struct {
	Alpha2 string `json:"alpha2"`
	Alpha3 string `json:"alpha3"`
	Name   string `json:"name"`
}

// Registry resolves alpha-2 and alpha-3 codes to language records. It is
// immutable after construction.
type Registry struct {
	byAlpha2 map[string]Language
	byAlpha3 map[string]Language
	ordered  []Language
}

// NewRegistry indexes the given language table.
func NewRegistry(languages []Language) *Registry {
	r := &Registry{
		byAlpha2: make(map[string]Language, len(languages)),
		byAlpha3: make(map[string]Language, len(languages)),
		ordered:  append([]Language(nil), languages...),
	}
	for _, lang := range languages {
		if lang.Alpha2 != "" {
			r.byAlpha2[lang.Alpha2] = lang
		}
		r.byAlpha3[lang.Alpha3] = lang
	}
	return r
}

// ByCode looks up a language by alpha-2 or alpha-3 code, case-insensitively.
func (r *Registry) ByCode(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if lang, ok := r.byAlpha3[code]; ok {
		return lang, true
	}
	lang, ok := r.byAlpha2[code]
	return lang, ok
}

// Alpha3 normalizes code to its alpha-3 form. Unknown codes are returned
// lowercased so callers can still match script identifiers against them.
func (r *Registry) Alpha3(code string) string {
	if lang, ok := r.ByCode(code); ok {
		return lang.Alpha3
	}
	return strings.ToLower(strings.TrimSpace(code))
}

// Languages returns a copy of the registry in table order.
func (r *Registry) Languages() []Language {
	return append([]Language(nil), r.ordered...)
}

// registryTable is the static language registry: one record per language the
// detector can report. The "und" entry backs the undetermined sentinel.
var registryTable = []Language{
	{Alpha2: "en", Alpha3: "eng", Name: "English"},
	{Alpha2: "es", Alpha3: "spa", Name: "Spanish"},
	{Alpha2: "fr", Alpha3: "fra", Name: "French"},
	{Alpha2: "pt", Alpha3: "por", Name: "Portuguese"},
	{Alpha2: "de", Alpha3: "deu", Name: "German"},
	{Alpha2: "it", Alpha3: "ita", Name: "Italian"},
	{Alpha2: "nl", Alpha3: "nld", Name: "Dutch"},
	{Alpha2: "ru", Alpha3: "rus", Name: "Russian"},
	{Alpha2: "uk", Alpha3: "ukr", Name: "Ukrainian"},
	{Alpha2: "bg", Alpha3: "bul", Name: "Bulgarian"},
	{Alpha2: "zh", Alpha3: "cmn", Name: "Chinese"},
	{Alpha2: "ja", Alpha3: "jpn", Name: "Japanese"},
	{Alpha2: "ko", Alpha3: "kor", Name: "Korean"},
	{Alpha2: "th", Alpha3: "tha", Name: "Thai"},
	{Alpha2: "el", Alpha3: "ell", Name: "Greek"},
	{Alpha2: "he", Alpha3: "heb", Name: "Hebrew"},
	{Alpha2: "ar", Alpha3: "ara", Name: "Arabic"},
	{Alpha2: "hi", Alpha3: "hin", Name: "Hindi"},
	{Alpha2: "bn", Alpha3: "ben", Name: "Bengali"},
	{Alpha2: "pa", Alpha3: "pan", Name: "Punjabi"},
	{Alpha2: "ta", Alpha3: "tam", Name: "Tamil"},
	{Alpha2: "te", Alpha3: "tel", Name: "Telugu"},
	{Alpha2: "kn", Alpha3: "kan", Name: "Kannada"},
	{Alpha2: "ml", Alpha3: "mal", Name: "Malayalam"},
	{Alpha2: "si", Alpha3: "sin", Name: "Sinhala"},
	{Alpha2: "my", Alpha3: "mya", Name: "Burmese"},
	{Alpha2: "km", Alpha3: "khm", Name: "Khmer"},
	{Alpha2: "lo", Alpha3: "lao", Name: "Lao"},
	{Alpha2: "ka", Alpha3: "kat", Name: "Georgian"},
	{Alpha2: "hy", Alpha3: "hye", Name: "Armenian"},
	{Alpha2: "am", Alpha3: "amh", Name: "Amharic"},
	{Alpha2: "", Alpha3: "und", Name: "Undetermined"},
}
