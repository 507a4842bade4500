package guesser

import (
	"math"
	"slices"
	"sync"
)

const (
	// DefaultMinLength is the minimum rune count detection attempts.
	DefaultMinLength = 10
	// DefaultLimit caps the guesses returned by Guess and GuessMixed.
	DefaultLimit = 3

	// maxInspected bounds the work per call: detection never looks past
	// this many runes of the input.
	maxInspected = 2048
	// scriptConfidence is the occurrence ratio a model-less script must
	// reach before it is reported on its own.
	scriptConfidence = 0.5
	// confidenceFloor is the minimum top score for a trigram detection to
	// count as conclusive.
	confidenceFloor = 0.5
)

// Options control a single detection call. The zero value selects the
// defaults. Allow and deny lists accept alpha-2 or alpha-3 codes.
type Options struct {
	MinLength int      `json:"min_length,omitempty"`
	Limit     int      `json:"limit,omitempty"`
	Only      []string `json:"only,omitempty"`
	Exclude   []string `json:"exclude,omitempty"`
}

// Result is one ranked guess resolved against the language registry.
type Result struct {
	Alpha2   string  `json:"alpha2"`
	Alpha3   string  `json:"alpha3"`
	Language string  `json:"language"`
	Score    float64 `json:"score"`
}

// Detector guesses the natural language of short text snippets by combining
// script classification with trigram frequency distances against per-language
// models. All state is built by the constructor and read-only afterwards, so
// a Detector is safe for concurrent use.
type Detector struct {
	registry *Registry
	// models indexes script -> language -> trigram -> rank.
	models  map[string]map[string]map[string]int
	scoring Scoring
}

// NewDetector builds a detector over the embedded model and registry tables
// with the default scoring constants.
func NewDetector() *Detector {
	return NewDetectorWithScoring(DefaultScoring())
}

// NewDetectorWithScoring is NewDetector with custom scoring constants.
func NewDetectorWithScoring(scoring Scoring) *Detector {
	models := make(map[string]map[string]map[string]int, len(modelTable))
	for scriptID, languages := range modelTable {
		index := make(map[string]map[string]int, len(languages))
		for code, trigrams := range languages {
			ranks := make(map[string]int, len(trigrams))
			for rank, trigram := range trigrams {
				ranks[trigram] = rank
			}
			index[code] = ranks
		}
		models[scriptID] = index
	}
	return &Detector{
		registry: NewRegistry(registryTable),
		models:   models,
		scoring:  scoring,
	}
}

var (
	defaultDetector *Detector
	defaultOnce     sync.Once
)

// Default returns a process-wide shared detector, built on first use.
func Default() *Detector {
	defaultOnce.Do(func() { defaultDetector = NewDetector() })
	return defaultDetector
}

// Registry exposes the language registry the detector resolves codes with.
func (d *Detector) Registry() *Registry {
	return d.registry
}

// DetectAll runs the full detection decision for one text and returns
// candidates sorted descending by score. Failure modes do not error: they
// yield the single candidate ("und", 1).
func (d *Detector) DetectAll(text string, opts Options) []Candidate {
	minLength := opts.MinLength
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	input := []rune(text)
	if len(input) < minLength {
		return undetectable()
	}
	if len(input) > maxInspected {
		input = input[:maxInspected]
		text = string(input)
	}

	only := d.alpha3(opts.Only)
	exclude := d.alpha3(opts.Exclude)

	scriptID, ratio := TopScript(text)
	models, hasModels := d.models[scriptID]
	if !hasModels {
		if ratio <= scriptConfidence {
			return undetectable()
		}
		switch {
		case len(only) == 0 || slices.Contains(only, scriptID):
			return []Candidate{{Code: scriptID, Score: 1}}
		case scriptID == "cmn" && slices.Contains(only, "jpn"):
			// Han characters overlap Chinese and Japanese writing;
			// an explicit Japanese allow list claims them.
			return []Candidate{{Code: "jpn", Score: 1}}
		default:
			return undetectable()
		}
	}

	ranked := d.RankedDistances(FrequencyTuples(text), models, only, exclude)
	if len(ranked) == 0 {
		return undetectable()
	}
	if ranked[0].Code == Undetermined {
		// Guard against a pseudo-entry leaking in from model data.
		return []Candidate{{Code: scriptID, Score: 1}}
	}

	minDistance := ranked[0].Score
	maxDistance := float64(len(input))*d.scoring.OOVPenalty - minDistance
	denom := math.Max(1, maxDistance)
	for i := range ranked {
		score := 1 - (ranked[i].Score-minDistance)/denom
		if math.IsNaN(score) || math.IsInf(score, 0) {
			score = 0
		}
		ranked[i].Score = score
	}
	if ranked[0].Score < confidenceFloor {
		return undetectable()
	}
	return ranked
}

// Guess returns up to opts.Limit ranked guesses for text, or the single
// undetermined entry with score 0 when nothing matches.
func (d *Detector) Guess(text string, opts Options) []Result {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	candidates := d.DetectAll(text, opts)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		if c.Code == Undetermined {
			continue
		}
		results = append(results, d.resolve(c))
	}
	if len(results) == 0 {
		return []Result{undeterminedResult()}
	}
	return results
}

// GuessBest returns the single most likely guess for text, optionally
// restricted to the given language codes.
func (d *Detector) GuessBest(text string, only ...string) Result {
	return d.Guess(text, Options{Limit: 1, Only: only})[0]
}

// Guess runs Default().Guess.
func Guess(text string, opts Options) []Result {
	return Default().Guess(text, opts)
}

// GuessBest runs Default().GuessBest.
func GuessBest(text string, only ...string) Result {
	return Default().GuessBest(text, only...)
}

// GuessMixed runs Default().GuessMixed.
func GuessMixed(text string, opts Options, seg SegmentOptions) []Result {
	return Default().GuessMixed(text, opts, seg)
}

func (d *Detector) resolve(c Candidate) Result {
	if lang, ok := d.registry.ByCode(c.Code); ok {
		return Result{Alpha2: lang.Alpha2, Alpha3: lang.Alpha3, Language: lang.Name, Score: c.Score}
	}
	return Result{Alpha3: c.Code, Score: c.Score}
}

// alpha3 normalizes a caller-supplied code list to alpha-3. Unknown codes
// pass through unchanged so script identifiers stay usable in allow lists.
func (d *Detector) alpha3(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		out = append(out, d.registry.Alpha3(code))
	}
	return out
}

func undetectable() []Candidate {
	return []Candidate{{Code: Undetermined, Score: 1}}
}

func undeterminedResult() Result {
	return Result{Alpha3: Undetermined, Score: 0}
}
