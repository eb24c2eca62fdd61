package game

import "strings"

// guessFillers is the fixed set of leading filler phrases stripped from a
// guess before comparison. At most one phrase is stripped, at the start
// only. The set is English-specific by policy.
var guessFillers = []string{
	"is it ",
	"it's ",
	"its ",
	"i think it's ",
	"i think its ",
	"i guess ",
	"my guess is ",
	"are you ",
}

// MatchGuess reports whether a free-text guess names the character. The
// guess matches when, after normalization, it equals the canonical name or
// any registered alias, either verbatim or with all characters outside
// [a-z0-9 ] stripped from both sides. Matching is case- and
// punctuation-insensitive but deliberately not fuzzy: no edit distance, no
// synonym expansion.
func MatchGuess(guess string, c Character) bool {
	norm := strings.TrimSpace(strings.ToLower(guess))
	for _, filler := range guessFillers {
		if strings.HasPrefix(norm, filler) {
			norm = norm[len(filler):]
			break
		}
	}
	norm = strings.TrimSpace(norm)

	candidates := make([]string, 0, len(c.Aliases)+1)
	candidates = append(candidates, strings.ToLower(c.Name))
	for _, alias := range c.Aliases {
		candidates = append(candidates, strings.ToLower(alias))
	}

	for _, name := range candidates {
		if norm == name || stripPunct(norm) == stripPunct(name) {
			return true
		}
	}
	return false
}

// stripPunct removes every character outside [a-z0-9 ].
func stripPunct(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
