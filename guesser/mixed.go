package guesser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// SegmentOptions tune how mixed-language text is cut up before per-segment
// detection. Zero values select the defaults.
type SegmentOptions struct {
	// WindowSize is the sliding-window length in runes, default 40.
	WindowSize int `json:"window_size,omitempty"`
	// StepSize is the window advance in runes, default 20.
	StepSize int `json:"step_size,omitempty"`
}

const (
	defaultWindowSize = 40
	defaultStepSize   = 20
	minSegmentLength  = 10
	// segmentGuesses caps the candidates one segment contributes.
	segmentGuesses = 3
)

var sentenceEnd = regexp.MustCompile(`[.!?…]+\s+`)

// Segments splits text at sentence boundaries, keeping segments of at least
// ten runes. With no surviving segment the whole input is one segment; with
// exactly one surviving segment longer than the window it is re-cut into
// overlapping sliding windows.
func Segments(text string, opts SegmentOptions) []string {
	window := opts.WindowSize
	if window <= 0 {
		window = defaultWindowSize
	}
	step := opts.StepSize
	if step <= 0 {
		step = defaultStepSize
	}

	sentences := lo.FilterMap(sentenceEnd.Split(text, -1), func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, len([]rune(part)) >= minSegmentLength
	})
	if len(sentences) == 0 {
		return []string{text}
	}
	if len(sentences) > 1 {
		return sentences
	}

	single := []rune(sentences[0])
	if len(single) <= window {
		return sentences
	}
	windows := make([]string, 0, len(single)/step+1)
	for start := 0; start < len(single); start += step {
		end := start + window
		if end > len(single) {
			end = len(single)
		}
		windows = append(windows, string(single[start:end]))
	}
	return windows
}

// GuessMixed detects text that may contain several languages: every segment
// is detected on its own and the per-segment candidates are merged by
// weighted average, weighting each segment by its rune count. The top
// opts.Limit aggregated guesses are returned, or the undetermined entry when
// no segment yields a language.
func (d *Detector) GuessMixed(text string, opts Options, seg SegmentOptions) []Result {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	type sums struct{ score, weight float64 }
	totals := make(map[string]*sums)

	for _, segment := range Segments(text, seg) {
		weight := float64(len([]rune(segment)))
		candidates := d.DetectAll(segment, Options{
			MinLength: opts.MinLength,
			Only:      opts.Only,
			Exclude:   opts.Exclude,
		})
		if len(candidates) > segmentGuesses {
			candidates = candidates[:segmentGuesses]
		}
		for _, c := range candidates {
			if c.Code == Undetermined {
				continue
			}
			total := totals[c.Code]
			if total == nil {
				total = &sums{}
				totals[c.Code] = total
			}
			total.score += c.Score * weight
			total.weight += weight
		}
	}
	if len(totals) == 0 {
		return []Result{undeterminedResult()}
	}

	merged := lo.MapToSlice(totals, func(code string, total *sums) Candidate {
		return Candidate{Code: code, Score: total.score / total.weight}
	})
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		return merged[i].Code < merged[j].Code
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return lo.Map(merged, func(c Candidate, _ int) Result { return d.resolve(c) })
}
