// Package textproc tokenizes and splits free-text interview answers.
package textproc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinTokenLength is the shortest token kept by Preprocess.
const MinTokenLength = 3

//nolint:gochecknoglobals // Static stopword table
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true, "not": true,
	"you": true, "all": true, "any": true, "can": true, "had": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "has": true, "him": true,
	"his": true, "how": true, "its": true, "may": true, "who": true, "did": true,
	"get": true, "got": true, "let": true, "she": true, "too": true, "very": true,
	"this": true, "that": true, "with": true, "have": true, "from": true, "they": true,
	"will": true, "would": true, "there": true, "their": true, "what": true, "about": true,
	"which": true, "when": true, "make": true, "like": true, "just": true, "into": true,
	"than": true, "them": true, "some": true, "could": true, "other": true, "then": true,
	"these": true, "those": true, "also": true, "been": true, "were": true, "being": true,
	"does": true, "doing": true, "each": true, "here": true, "more": true, "most": true,
	"much": true, "must": true, "only": true, "over": true, "same": true, "should": true,
	"such": true, "where": true, "while": true, "why": true, "your": true, "yours": true,
	"because": true, "before": true, "after": true, "again": true, "between": true, "both": true,
	"during": true, "itself": true, "myself": true, "well": true, "really": true,
}

// IsStopWord reports whether the lowercased word is in the stopword table.
func IsStopWord(word string) (stop bool) {
	stop = stopWords[word]
	return stop
}

// Preprocess lowercases text, turns punctuation into whitespace and returns the remaining tokens
// in order, without short tokens and stopwords.
func Preprocess(text string) (tokens []string) {
	tokens = []string{}

	cleaned := strings.Map(func(r rune) (out rune) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			out = unicode.ToLower(r)
			return out
		}
		out = ' '
		return out
	}, text)

	for _, word := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(word) < MinTokenLength {
			continue
		}
		if stopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// TokenSet returns the distinct tokens of Preprocess(text).
func TokenSet(text string) (set map[string]bool) {
	set = make(map[string]bool)
	for _, token := range Preprocess(text) {
		set[token] = true
	}
	return set
}

// ExtractSentences splits text on '.', '!' and '?' and returns the trimmed, non-empty pieces.
func ExtractSentences(text string) (sentences []string) {
	sentences = []string{}

	parts := strings.FieldsFunc(text, func(r rune) (split bool) {
		split = r == '.' || r == '!' || r == '?'
		return split
	})

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}

	return sentences
}

// WordCount counts whitespace-separated words.
func WordCount(text string) (count int) {
	count = len(strings.Fields(text))
	return count
}

// AvgSentenceLength is the mean number of words per sentence, 0 when there are no sentences.
func AvgSentenceLength(text string) (avg float64) {
	sentences := ExtractSentences(text)
	if len(sentences) == 0 {
		return avg
	}

	total := 0
	for _, sentence := range sentences {
		total += WordCount(sentence)
	}

	avg = float64(total) / float64(len(sentences))
	return avg
}

// Analysis is a single preprocessing pass over a text, shared by every scorer.
type Analysis struct {
	Raw               string
	Lower             string
	Tokens            []string
	TokenSet          map[string]bool
	Sentences         []string
	WordCount         int
	AvgSentenceLength float64
}

// Analyze preprocesses text once. Curly apostrophes are folded so phrase matching sees "i'm".
func Analyze(text string) (analysis Analysis) {
	lower := strings.ToLower(strings.NewReplacer("’", "'", "‘", "'").Replace(text))

	tokens := Preprocess(text)
	set := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		set[token] = true
	}

	analysis = Analysis{
		Raw:               text,
		Lower:             lower,
		Tokens:            tokens,
		TokenSet:          set,
		Sentences:         ExtractSentences(text),
		WordCount:         WordCount(text),
		AvgSentenceLength: AvgSentenceLength(text),
	}
	return analysis
}
