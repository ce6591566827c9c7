package model

import "slices"

// NameList is an ordered list of Pokémon names.
// Values handed out by the repository are copies; the roster itself is never mutated.
type NameList []string

// Len reports how many names the list holds.
func (l NameList) Len() int { return len(l) }

// Clone returns an independent copy of the list.
func (l NameList) Clone() NameList {
	if l == nil {
		return NameList{}
	}
	return slices.Clone(l)
}

// DefaultRoster returns the fixed roster served by /pokemon, in display order.
func DefaultRoster() NameList {
	return NameList{
		"Pikachu", "Charizard", "Squirtle", "Jigglypuff", "Bulbasaur",
		"Gengar", "Charmander", "Mew", "Lugia", "Gyarados",
	}
}
