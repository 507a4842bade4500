package guesser

import (
	"reflect"
	"strings"
	"testing"
)

func TestDetectAllShortText(t *testing.T) {
	d := NewDetector()
	for _, input := range []string{"", "hi", "short", "123456789"} {
		got := d.DetectAll(input, Options{})
		want := []Candidate{{Code: Undetermined, Score: 1}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("DetectAll(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestDetectAllCustomMinLength(t *testing.T) {
	d := NewDetector()
	got := d.DetectAll("fifteen chars!!", Options{MinLength: 20})
	if got[0].Code != Undetermined {
		t.Errorf("DetectAll below custom MinLength = %v, want und", got)
	}
}

func TestDetectAllEnglish(t *testing.T) {
	d := NewDetector()
	got := d.DetectAll("This is a sample sentence written in English.", Options{})
	if got[0].Code != "eng" {
		t.Fatalf("best candidate = %q, want eng (all: %v)", got[0].Code, got)
	}
	if got[0].Score != 1 {
		t.Errorf("best score = %v, want 1", got[0].Score)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not descending at %d: %v", i, got)
		}
	}
}

func TestDetectAllScriptOnly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "han",
			input: "这是一个中文句子测试文本",
			want:  "cmn",
		},
		{
			name:  "hiragana",
			input: "これはにほんごのぶんしょうです",
			want:  "jpn",
		},
		{
			name:  "hangul",
			input: "안녕하세요 한국어 문장입니다",
			want:  "kor",
		},
		{
			name:  "thai",
			input: "สวัสดีครับนี่คือภาษาไทย",
			want:  "tha",
		},
	}

	d := NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.DetectAll(tt.input, Options{})
			want := []Candidate{{Code: tt.want, Score: 1}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("DetectAll(%q) = %v, want %v", tt.input, got, want)
			}
		})
	}
}

func TestDetectAllHanAllowList(t *testing.T) {
	d := NewDetector()
	han := "这是一个中文句子测试文本"

	tests := []struct {
		name string
		only []string
		want string
	}{
		{
			name: "allow list contains the script",
			only: []string{"cmn"},
			want: "cmn",
		},
		{
			name: "japanese claims han",
			only: []string{"jpn"},
			want: "jpn",
		},
		{
			name: "alpha-2 japanese claims han",
			only: []string{"ja"},
			want: "jpn",
		},
		{
			name: "allow list matches nothing",
			only: []string{"kor"},
			want: Undetermined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.DetectAll(han, Options{Only: tt.only})
			if got[0].Code != tt.want {
				t.Errorf("DetectAll(only=%v) = %v, want %q", tt.only, got, tt.want)
			}
		})
	}
}

func TestDetectAllDenyList(t *testing.T) {
	d := NewDetector()
	got := d.DetectAll("This is a sample sentence written in English.", Options{Exclude: []string{"en"}})
	if got[0].Code == "eng" {
		t.Errorf("denied language still ranked first: %v", got)
	}
}

func TestDetectAllIdempotent(t *testing.T) {
	d := NewDetector()
	input := "El rápido zorro marrón salta sobre el perro perezoso."
	first := d.DetectAll(input, Options{})
	second := d.DetectAll(input, Options{})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated detection diverged:\n%v\n%v", first, second)
	}
}

func TestDetectAllLongInput(t *testing.T) {
	d := NewDetector()
	long := strings.Repeat("This is a sample sentence written in English. ", 200)
	got := d.DetectAll(long, Options{})
	if got[0].Code != "eng" {
		t.Errorf("best candidate for long input = %q, want eng", got[0].Code)
	}
}

func TestGuessEnglish(t *testing.T) {
	got := GuessBest("This is a sample sentence written in English.")
	if !strings.Contains(got.Language, "English") {
		t.Errorf("GuessBest language = %q, want it to contain English", got.Language)
	}
	if got.Alpha2 != "en" || got.Alpha3 != "eng" {
		t.Errorf("GuessBest codes = %q/%q, want en/eng", got.Alpha2, got.Alpha3)
	}
}

func TestGuessSpanishAllowList(t *testing.T) {
	got := GuessBest("Esta es una oración de ejemplo en español.", "es", "eng")
	if !strings.Contains(got.Language, "Spanish") {
		t.Errorf("GuessBest language = %q, want it to contain Spanish", got.Language)
	}
}

func TestGuessLimit(t *testing.T) {
	got := Guess("This is a sample sentence written in English.", Options{Limit: 2})
	if len(got) != 2 {
		t.Fatalf("Guess returned %d results, want 2", len(got))
	}
	if got[0].Score < got[1].Score {
		t.Errorf("results not descending: %v", got)
	}
}

func TestGuessUndetermined(t *testing.T) {
	got := Guess("short", Options{})
	want := []Result{{Alpha3: Undetermined, Score: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Guess on short text = %v, want %v", got, want)
	}
}

func TestGuessNumbersOnly(t *testing.T) {
	got := Guess("1234567890 24680 13579", Options{})
	if got[0].Alpha3 != Undetermined {
		t.Errorf("Guess on digits = %v, want und", got)
	}
}

func BenchmarkDetectAllEnglish(b *testing.B) {
	d := NewDetector()
	text := "This is a sample sentence written in English for benchmarking."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.DetectAll(text, Options{})
	}
}

func BenchmarkDetectAllHan(b *testing.B) {
	d := NewDetector()
	text := "这是一个中文句子测试文本"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.DetectAll(text, Options{})
	}
}
