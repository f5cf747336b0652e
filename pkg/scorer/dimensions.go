package scorer

import (
	"math"
	"strings"

	"github.com/nikogura/interview-coach/pkg/textproc"
)

// Relevance measures how much of the question's vocabulary the answer covers.
func Relevance(question, answer textproc.Analysis) (score int) {
	if len(question.TokenSet) == 0 {
		return score
	}

	intersection := 0
	for token := range question.TokenSet {
		if answer.TokenSet[token] {
			intersection++
		}
	}
	union := len(question.TokenSet) + len(answer.TokenSet) - intersection

	coverage := float64(intersection) / float64(len(question.TokenSet))
	similarity := float64(intersection) / float64(union)

	score = clamp(int(math.Round(100 * (0.7*coverage + 0.3*similarity))))
	return score
}

// Clarity rewards moderate sentence length and answer length.
func Clarity(answer textproc.Analysis) (score int) {
	score = ClarityBase

	avg := answer.AvgSentenceLength
	switch {
	case avg >= 10 && avg <= 20:
		score += 30
	case avg >= 6 && avg <= 25:
		score += 20
	case avg < 6:
		score += 10
	default:
		score += 5
	}

	words := answer.WordCount
	switch {
	case words >= 30 && words <= 150:
		score += 20
	case words >= 20 && words <= 200:
		score += 10
	}

	if words < 10 {
		score -= 30
	}

	score = clamp(score)
	return score
}

// TechnicalDepth counts distinct domain keywords present in the answer.
// Adding matched keywords never lowers the score.
func TechnicalDepth(answer textproc.Analysis, keywords []string) (score int) {
	distinct := distinctKeywords(keywords)
	if len(distinct) == 0 {
		score = TechnicalEmpty
		return score
	}

	matches := CountKeywordMatches(answer, distinct)

	coverage := float64(matches) / math.Sqrt(float64(len(distinct)))
	raw := math.Min(coverage*50, 100)
	if matches >= 3 {
		raw += 10
	}
	if matches >= 5 {
		raw += 10
	}

	score = clamp(int(math.Round(raw)))
	return score
}

// CountKeywordMatches counts distinct keywords found as case-insensitive substrings of the answer.
func CountKeywordMatches(answer textproc.Analysis, keywords []string) (matches int) {
	for _, kw := range distinctKeywords(keywords) {
		if strings.Contains(answer.Lower, kw) {
			matches++
		}
	}
	return matches
}

// Confidence rewards assertive first-person phrasing and penalizes hedging.
func Confidence(answer textproc.Analysis) (score int) {
	score = ConfidenceBase

	for _, phrase := range StrongPhrases {
		if strings.Contains(answer.Lower, phrase) {
			score += StrongPhraseBonus
		}
	}

	for _, phrase := range WeakPhrases {
		if strings.Contains(answer.Lower, phrase) {
			score -= WeakPhrasePenalty
		}
	}

	if actionVerbPattern.MatchString(answer.Lower) {
		score += ActionVerbBonus
	}

	score = clamp(score)
	return score
}

// Structure rewards sequencing, STAR vocabulary and logical connectors.
func Structure(answer textproc.Analysis) (score int) {
	score = StructureBase

	for i, family := range StructureFamilies {
		found := 0
		for _, pattern := range familyPatterns[i] {
			if pattern.MatchString(answer.Lower) {
				found++
			}
		}

		switch {
		case found >= 2:
			score += family.Many
		case found == 1:
			score += family.One
		}
	}

	sentences := len(answer.Sentences)
	if sentences >= SentenceRangeMin && sentences <= SentenceRangeMax {
		score += SentenceRangeBonus
	}

	score = clamp(score)
	return score
}

func distinctKeywords(keywords []string) (distinct []string) {
	seen := make(map[string]bool, len(keywords))
	distinct = make([]string, 0, len(keywords))
	for _, kw := range keywords {
		key := strings.ToLower(strings.TrimSpace(kw))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		distinct = append(distinct, key)
	}
	return distinct
}

func clamp(value int) (clamped int) {
	clamped = value
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}
	return clamped
}
