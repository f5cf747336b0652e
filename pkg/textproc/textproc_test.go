package textproc

import (
	"reflect"
	"testing"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "punctuation and stopwords",
			text: "Explain how React's useEffect hook works, and when you would use it.",
			want: []string{"explain", "react", "useeffect", "hook", "works", "use"},
		},
		{
			name: "short tokens dropped",
			text: "I am on it, ok?",
			want: []string{},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "hyphenated words split",
			text: "Server-side rendering",
			want: []string{"server", "side", "rendering"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preprocess(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestExtractSentences(t *testing.T) {
	got := ExtractSentences("First we profiled.  Then we fixed it!   Did it work? Yes... ")
	want := []string{"First we profiled", "Then we fixed it", "Did it work", "Yes"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if len(ExtractSentences("   ")) != 0 {
		t.Error("Expected no sentences for whitespace input")
	}
}

func TestWordCountAndAverage(t *testing.T) {
	text := "One two three four. Five six."

	if WordCount(text) != 6 {
		t.Errorf("Expected 6 words, got %d", WordCount(text))
	}

	if AvgSentenceLength(text) != 3 {
		t.Errorf("Expected average sentence length 3, got %f", AvgSentenceLength(text))
	}

	if AvgSentenceLength("") != 0 {
		t.Error("Expected 0 average for empty text")
	}
}

func TestTokenSetDeduplicates(t *testing.T) {
	set := TokenSet("cache cache CACHE invalidation")

	if len(set) != 2 {
		t.Errorf("Expected 2 distinct tokens, got %d", len(set))
	}

	if !set["cache"] || !set["invalidation"] {
		t.Errorf("Unexpected token set: %v", set)
	}
}

func TestPreprocessDeterministic(t *testing.T) {
	text := "Because the cache was stale, we rebuilt the index."
	if !reflect.DeepEqual(Preprocess(text), Preprocess(text)) {
		t.Error("Expected identical tokens for identical input")
	}
}

func TestAnalyze(t *testing.T) {
	a := Analyze("I’m confident. We shipped the Cache layer!")

	if a.Lower != "i'm confident. we shipped the cache layer!" {
		t.Errorf("Unexpected lowered text: %q", a.Lower)
	}

	if a.WordCount != 7 {
		t.Errorf("Expected 7 words, got %d", a.WordCount)
	}

	if len(a.Sentences) != 2 {
		t.Errorf("Expected 2 sentences, got %d", len(a.Sentences))
	}

	if !a.TokenSet["cache"] || a.TokenSet["the"] {
		t.Errorf("Unexpected token set: %v", a.TokenSet)
	}
}
