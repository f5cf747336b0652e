package scorer

import (
	"regexp"
)

// Base scores before bonuses and penalties.
const (
	ClarityBase    = 50
	ConfidenceBase = 50
	StructureBase  = 40
	TechnicalEmpty = 50 // neutral score when there is nothing to match against
)

// Confidence adjustments per matched phrase.
const (
	StrongPhraseBonus = 8
	WeakPhrasePenalty = 12
	ActionVerbBonus   = 10
)

// StrongPhrases are assertive, first-person phrases.
//
//nolint:gochecknoglobals // Scoring configuration constants
var StrongPhrases = []string{
	"i implemented", "i designed", "i built", "i created", "i developed", "i led", "i solved",
	"i optimized", "i improved", "i achieved", "i delivered", "i ensured", "i decided",
	"i managed", "i'm confident", "i am confident", "definitely", "successfully",
	"in my experience", "i have experience", "specifically", "resulted in",
}

// WeakPhrases are hedges that undercut an answer.
//
//nolint:gochecknoglobals // Scoring configuration constants
var WeakPhrases = []string{
	"i think", "i guess", "maybe", "probably", "i'm not sure", "i am not sure", "kind of",
	"sort of", "i don't know", "perhaps", "might be", "i believe", "hopefully", "i suppose",
	"possibly", "not really",
}

//nolint:gochecknoglobals // Compiled once
var actionVerbPattern = regexp.MustCompile(`\bi (implemented|designed|built|created|developed|solved)\b`)

// MarkerFamily is one group of structural markers and the bonus it earns.
type MarkerFamily struct {
	Name    string
	Markers []string
	One     int // bonus for exactly one distinct marker
	Many    int // bonus for two or more
}

// StructureFamilies lists the structural marker groups in evaluation order.
//
//nolint:gochecknoglobals // Scoring configuration constants
var StructureFamilies = []MarkerFamily{
	{
		Name: "sequential",
		Markers: []string{
			"first", "firstly", "second", "secondly", "third", "next", "then", "after that",
			"afterwards", "finally", "lastly", "initially", "subsequently", "to begin",
		},
		One:  10,
		Many: 20,
	},
	{
		Name: "star",
		Markers: []string{
			"situation", "task", "action", "result", "results", "outcome", "challenge", "goal",
			"impact", "resulted", "achieved",
		},
		One:  10,
		Many: 20,
	},
	{
		Name: "logical",
		Markers: []string{
			"because", "therefore", "however", "consequently", "as a result", "thus", "moreover",
			"furthermore", "additionally", "since", "although", "so that",
		},
		One:  8,
		Many: 15,
	},
}

// SentenceRangeBonus is awarded when the answer has between SentenceRangeMin and SentenceRangeMax sentences.
const (
	SentenceRangeMin   = 3
	SentenceRangeMax   = 8
	SentenceRangeBonus = 10
)

//nolint:gochecknoglobals // Compiled once from StructureFamilies
var familyPatterns = compileFamilies(StructureFamilies)

func compileFamilies(families []MarkerFamily) (patterns [][]*regexp.Regexp) {
	patterns = make([][]*regexp.Regexp, len(families))
	for i, family := range families {
		for _, marker := range family.Markers {
			patterns[i] = append(patterns[i], regexp.MustCompile(`\b`+regexp.QuoteMeta(marker)+`\b`))
		}
	}
	return patterns
}
