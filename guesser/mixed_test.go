package guesser

import (
	"strings"
	"testing"
)

func TestSegmentsSentences(t *testing.T) {
	got := Segments("This is the first sentence. And here is the second one! A third sentence follows?", SegmentOptions{})
	if len(got) != 3 {
		t.Fatalf("Segments returned %d segments, want 3: %v", len(got), got)
	}
	if got[0] != "This is the first sentence" {
		t.Errorf("first segment = %q", got[0])
	}
}

func TestSegmentsDropShort(t *testing.T) {
	got := Segments("Tiny. This one is long enough to keep. No.", SegmentOptions{})
	if len(got) != 1 {
		t.Fatalf("Segments returned %d segments, want 1: %v", len(got), got)
	}
	if !strings.Contains(got[0], "long enough") {
		t.Errorf("kept segment = %q", got[0])
	}
}

func TestSegmentsFallbackWholeInput(t *testing.T) {
	input := "Hi. Ok. No."
	got := Segments(input, SegmentOptions{})
	if len(got) != 1 || got[0] != input {
		t.Errorf("Segments = %v, want the whole input back", got)
	}
}

func TestSegmentsSlidingWindow(t *testing.T) {
	// One 100-rune segment without sentence boundaries: windows start at
	// 0, 20, 40, 60 and 80.
	input := strings.Repeat("abcdefghij", 10)
	got := Segments(input, SegmentOptions{})
	if len(got) != 5 {
		t.Fatalf("Segments returned %d windows, want 5: %v", len(got), got)
	}
	for i, window := range got[:4] {
		if len([]rune(window)) != 40 {
			t.Errorf("window %d has length %d, want 40", i, len([]rune(window)))
		}
	}
	if len([]rune(got[4])) != 20 {
		t.Errorf("final window has length %d, want 20", len([]rune(got[4])))
	}
}

func TestSegmentsWindowOverrides(t *testing.T) {
	input := strings.Repeat("abcdefghij", 3)
	got := Segments(input, SegmentOptions{WindowSize: 10, StepSize: 10})
	if len(got) != 3 {
		t.Fatalf("Segments returned %d windows, want 3: %v", len(got), got)
	}
}

func TestGuessMixedPortugueseAndEnglish(t *testing.T) {
	text := "I like to write code every day. Eu gosto de escrever código todos os dias."
	got := GuessMixed(text, Options{Only: []string{"por", "eng"}}, SegmentOptions{})

	found := map[string]bool{}
	for _, result := range got {
		found[result.Alpha3] = true
	}
	if !found["por"] || !found["eng"] {
		t.Errorf("GuessMixed results = %v, want both por and eng", got)
	}
}

func TestGuessMixedLimit(t *testing.T) {
	text := "This is the first English sentence. Esta es una oración española de ejemplo."
	got := GuessMixed(text, Options{Limit: 1}, SegmentOptions{})
	if len(got) != 1 {
		t.Errorf("GuessMixed returned %d results, want 1", len(got))
	}
}

func TestGuessMixedUndetermined(t *testing.T) {
	got := GuessMixed("????? !!!!! .....", Options{}, SegmentOptions{})
	if len(got) != 1 || got[0].Alpha3 != Undetermined || got[0].Score != 0 {
		t.Errorf("GuessMixed on noise = %v, want single und with score 0", got)
	}
}

func TestGuessMixedScoresDescending(t *testing.T) {
	text := "The weather is very nice today in the city. El clima es muy agradable hoy en la ciudad."
	got := GuessMixed(text, Options{}, SegmentOptions{})
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not descending at %d: %v", i, got)
		}
	}
}
