package guesser

import "unicode"

// Undetermined is the sentinel code reported when no language or script can
// be identified with any confidence.
const Undetermined = "und"

// script pairs an identifier with the Unicode ranges its characters live in.
// Scripts hosting exactly one language carry that language's ISO 639-3 code
// as identifier so they can be reported directly without a trigram model.
type script struct {
	id     string
	ranges []*unicode.RangeTable
}

// scriptTable lists every non-Latin script the classifier knows, in scan
// order. Latin is not listed here: it is the common case and handled by a
// majority check before this table is consulted.
var scriptTable = []script{
	{"cmn", []*unicode.RangeTable{unicode.Han}},
	{"jpn", []*unicode.RangeTable{unicode.Hiragana, unicode.Katakana}},
	{"kor", []*unicode.RangeTable{unicode.Hangul}},
	{"Cyrillic", []*unicode.RangeTable{unicode.Cyrillic}},
	{"ara", []*unicode.RangeTable{unicode.Arabic}},
	{"ell", []*unicode.RangeTable{unicode.Greek}},
	{"heb", []*unicode.RangeTable{unicode.Hebrew}},
	{"hin", []*unicode.RangeTable{unicode.Devanagari}},
	{"ben", []*unicode.RangeTable{unicode.Bengali}},
	{"tha", []*unicode.RangeTable{unicode.Thai}},
	{"pan", []*unicode.RangeTable{unicode.Gurmukhi}},
	{"tam", []*unicode.RangeTable{unicode.Tamil}},
	{"tel", []*unicode.RangeTable{unicode.Telugu}},
	{"kan", []*unicode.RangeTable{unicode.Kannada}},
	{"mal", []*unicode.RangeTable{unicode.Malayalam}},
	{"sin", []*unicode.RangeTable{unicode.Sinhala}},
	{"mya", []*unicode.RangeTable{unicode.Myanmar}},
	{"khm", []*unicode.RangeTable{unicode.Khmer}},
	{"lao", []*unicode.RangeTable{unicode.Lao}},
	{"kat", []*unicode.RangeTable{unicode.Georgian}},
	{"hye", []*unicode.RangeTable{unicode.Armenian}},
	{"amh", []*unicode.RangeTable{unicode.Ethiopic}},
}

// OccurrenceRatio returns the share of runes in text that fall into ranges.
// The denominator is the full rune count, whitespace and punctuation
// included.
func OccurrenceRatio(text string, ranges []*unicode.RangeTable) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	matched := 0
	for _, r := range runes {
		if unicode.In(r, ranges...) {
			matched++
		}
	}
	return float64(matched) / float64(len(runes))
}

// IsLatin reports whether Latin letters make up more than half of all
// letters in text. Non-letter runes do not count against the majority.
func IsLatin(text string) bool {
	letters, latin := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Latin, r) {
			latin++
		}
	}
	return letters > 0 && latin*2 > letters
}

// TopScript returns the dominant script of text together with its occurrence
// ratio. Texts shorter than three runes are undetermined. A ratio of exactly
// 1 stops the scan early; otherwise the highest ratio wins, first entry of
// the table on ties.
func TopScript(text string) (string, float64) {
	if len([]rune(text)) < 3 {
		return Undetermined, 1
	}
	if IsLatin(text) {
		return "Latin", 1
	}
	id, best := "", -1.0
	for _, s := range scriptTable {
		ratio := OccurrenceRatio(text, s.ranges)
		if ratio > best {
			id, best = s.id, ratio
			if ratio == 1 {
				break
			}
		}
	}
	return id, best
}
