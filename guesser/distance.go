package guesser

import (
	"math"
	"slices"
	"sort"
)

// Scoring carries the tunable constants of the distance formula so they can
// be recalibrated against a reference corpus without touching the algorithm.
type Scoring struct {
	// OOVPenalty is charged for every profile trigram the model does not
	// contain. It is large enough to dominate any in-vocabulary
	// contribution for short and medium texts.
	OOVPenalty float64
	// RankScale divides the |count - rank| contribution of trigrams the
	// model does contain.
	RankScale float64
}

// DefaultScoring returns the constants the models were calibrated with.
func DefaultScoring() Scoring {
	return Scoring{OOVPenalty: 300, RankScale: 2}
}

// Candidate pairs a language code (or a script identifier for model-less
// scripts) with a score. Depending on the stage the score is a raw distance
// (lower is better) or a normalized confidence (higher is better).
type Candidate struct {
	Code  string  `json:"code"`
	Score float64 `json:"score"`
}

// Distance measures how far a text profile is from a language model: the
// rank displacement of every shared trigram plus a fixed penalty for every
// trigram the model lacks. Lower means more similar.
func (d *Detector) Distance(profile []Trigram, model map[string]int) float64 {
	total := 0.0
	for _, t := range profile {
		if rank, ok := model[t.Trigram]; ok {
			total += math.Abs(float64(t.Count-rank)) / d.scoring.RankScale
		} else {
			total += d.scoring.OOVPenalty
		}
	}
	return total
}

// FilterLanguages applies allow and deny lists to a language model set.
// Codes must already be alpha-3. With both lists empty the input is returned
// unchanged; otherwise a language survives iff it is allowed (or the allow
// list is empty) and not denied. Deny wins over allow.
func FilterLanguages(models map[string]map[string]int, only, exclude []string) map[string]map[string]int {
	if len(only) == 0 && len(exclude) == 0 {
		return models
	}
	filtered := make(map[string]map[string]int)
	for code, model := range models {
		if len(only) > 0 && !slices.Contains(only, code) {
			continue
		}
		if slices.Contains(exclude, code) {
			continue
		}
		filtered[code] = model
	}
	return filtered
}

// RankedDistances scores profile against every model surviving the filter
// and returns the candidates ascending by distance. Equal distances are
// ordered by language code so the output does not depend on map iteration.
func (d *Detector) RankedDistances(profile []Trigram, models map[string]map[string]int, only, exclude []string) []Candidate {
	filtered := FilterLanguages(models, only, exclude)
	ranked := make([]Candidate, 0, len(filtered))
	for code, model := range filtered {
		ranked = append(ranked, Candidate{Code: code, Score: d.Distance(profile, model)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score < ranked[j].Score
		}
		return ranked[i].Code < ranked[j].Code
	})
	return ranked
}
