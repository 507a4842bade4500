package guesser

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trigram is one entry of a text's frequency profile: a three-rune window
// and the number of times it occurs.
type Trigram struct {
	Trigram string
	Count   int
}

var (
	markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	punctRun     = regexp.MustCompile(`[\p{P}\p{S}]+`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

// Normalize prepares text for trigram extraction: diacritical marks are
// stripped, punctuation and symbol runs become single spaces, whitespace is
// collapsed, the result is trimmed, lowercased and padded with one leading
// and one trailing space. Empty input normalizes to the empty string.
func Normalize(text string) string {
	stripped, _, err := transform.String(markStripper, text)
	if err != nil {
		stripped = text
	}
	s := punctRun.ReplaceAllString(stripped, " ")
	s = spaceRun.ReplaceAllString(s, " ")
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return " " + s + " "
}

// Trigrams returns every overlapping three-rune window of the normalized
// text in order of occurrence, or nil when the normalized text is shorter
// than three runes.
func Trigrams(text string) []string {
	r := []rune(Normalize(text))
	if len(r) < 3 {
		return nil
	}
	out := make([]string, 0, len(r)-2)
	for i := 0; i+3 <= len(r); i++ {
		out = append(out, string(r[i:i+3]))
	}
	return out
}

// FrequencyTuples counts each distinct trigram of text and returns the
// tuples sorted ascending by count. The order of equal counts is whatever
// the counting map yields, kept stable by the sort.
func FrequencyTuples(text string) []Trigram {
	counts := make(map[string]int)
	for _, t := range Trigrams(text) {
		counts[t]++
	}
	tuples := make([]Trigram, 0, len(counts))
	for t, c := range counts {
		tuples = append(tuples, Trigram{Trigram: t, Count: c})
	}
	sort.SliceStable(tuples, func(i, j int) bool { return tuples[i].Count < tuples[j].Count })
	return tuples
}
