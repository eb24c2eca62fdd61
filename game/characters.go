// Package game implements the guessing-game core: the hidden character
// table, the system prompt builder, the answer classifier, the guess
// matcher, and per-session state.
package game

import "fmt"

// Character is one hidden identity. The table is created at process start
// and read-only thereafter.
type Character struct {
	// ID is the stable character index, matching its position in the table.
	ID int
	// Name is the canonical identity. Never sent to any client except via
	// the reveal endpoint.
	Name string
	// Aliases are accepted alternate names and titles for guess matching.
	Aliases []string
	// Label, Icon, and Color are the only player-facing attributes.
	Label string
	Icon  string
	Color string
	// Bio is long-form ground truth fed only to the adapter as hidden
	// context.
	Bio string
}

// Metadata is the player-facing view of a character.
type Metadata struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// CharacterAt returns the character for a session index, rejecting
// out-of-range values.
func CharacterAt(index int) (Character, error) {
	if index < 0 || index >= len(Characters) {
		return Character{}, fmt.Errorf("invalid character index %d", index)
	}
	return Characters[index], nil
}

// CharacterMetadata lists every character's player-facing attributes in
// table order. Names, aliases, and biographies are categorically excluded.
func CharacterMetadata() []Metadata {
	out := make([]Metadata, len(Characters))
	for i, c := range Characters {
		out[i] = Metadata{ID: c.ID, Label: c.Label, Icon: c.Icon, Color: c.Color}
	}
	return out
}
