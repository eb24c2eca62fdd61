package game

import "strings"

// Answer is one of the four categorical outcomes a model reply can carry.
type Answer string

const (
	AnswerYes       Answer = "Yes"
	AnswerNo        Answer = "No"
	AnswerSometimes Answer = "Sometimes"
	AnswerPartially Answer = "Partially"
	// AnswerInvalid marks a reply that is not one of the four tokens.
	AnswerInvalid Answer = "Invalid"
)

// Verdict is the classified outcome of a raw model reply. Valid is the
// sole signal that a question should consume one unit of the question
// budget.
type Verdict struct {
	Category Answer
	Valid    bool
}

// canonicalTokens in priority order: when a normalized reply could prefix
// more than one, the first listed wins.
var canonicalTokens = []struct {
	token    string
	category Answer
}{
	{"yes", AnswerYes},
	{"no", AnswerNo},
	{"sometimes", AnswerSometimes},
	{"partially", AnswerPartially},
}

// Classify maps raw model text to one of the four categories, or marks it
// invalid. Normalization lower-cases the text and strips every non-letter
// character, so casing and trailing punctuation do not matter. An empty or
// whitespace-only reply is invalid.
func Classify(raw string) Verdict {
	var normalized strings.Builder
	for _, r := range strings.ToLower(raw) {
		if r >= 'a' && r <= 'z' {
			normalized.WriteRune(r)
		}
	}
	text := normalized.String()
	if text == "" {
		return Verdict{Category: AnswerInvalid}
	}
	for _, c := range canonicalTokens {
		if text == c.token || strings.HasPrefix(text, c.token) {
			return Verdict{Category: c.category, Valid: true}
		}
	}
	return Verdict{Category: AnswerInvalid}
}
