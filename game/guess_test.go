package game

import "testing"

func TestMatchGuess(t *testing.T) {
	character := Character{
		Name:    "Sherlock Holmes",
		Aliases: []string{"Sherlock", "Holmes"},
	}

	tests := []struct {
		name  string
		guess string
		want  bool
	}{
		{"exact name", "Sherlock Holmes", true},
		{"lowercase", "sherlock holmes", true},
		{"alias", "Sherlock", true},
		{"second alias", "holmes", true},
		{"filler is it", "is it Sherlock Holmes", true},
		{"filler contraction", "it's sherlock holmes", true},
		{"filler without apostrophe", "its sherlock", true},
		{"filler i think", "I think it's Sherlock Holmes", true},
		{"filler my guess", "my guess is holmes", true},
		{"filler are you", "Are you Sherlock Holmes?", true},
		{"surrounding whitespace", "  sherlock holmes  ", true},
		{"punctuation noise", "sherlock holmes!!!", true},
		{"wrong character", "Hercule Poirot", false},
		{"partial word", "sher", false},
		{"name embedded in sentence", "the detective sherlock holmes from london", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchGuess(tt.guess, character); got != tt.want {
				t.Errorf("MatchGuess(%q) = %v, want %v", tt.guess, got, tt.want)
			}
		})
	}
}

func TestMatchGuess_SingleFillerStripped(t *testing.T) {
	character := Character{Name: "Cleopatra"}

	// Only one leading filler phrase is stripped, so stacking two leaves
	// the second in place and the guess misses.
	if MatchGuess("is it is it cleopatra", character) {
		t.Error("Expected stacked fillers not to match")
	}
	if !MatchGuess("is it cleopatra", character) {
		t.Error("Expected single filler to be stripped")
	}
}

func TestMatchGuess_PunctuationInName(t *testing.T) {
	character := Character{Name: "Walter White", Aliases: []string{"Heisenberg", "Mr. White"}}

	// Alias carries a period; comparison also runs with punctuation
	// stripped from both sides.
	if !MatchGuess("mr white", character) {
		t.Error("Expected punctuation-insensitive alias match")
	}
	if !MatchGuess("heisenberg", character) {
		t.Error("Expected plain alias match")
	}
}

func TestMatchGuess_NotFuzzy(t *testing.T) {
	character := Character{Name: "Marie Curie"}

	// One-letter typos do not match; the comparison is exact, not fuzzy.
	if MatchGuess("mary curie", character) {
		t.Error("Expected near-miss spelling not to match")
	}
}
