package repository

import (
	"context"

	"pokedex/internal/model"
)

// PokemonRepository gives read-only access to the Pokémon roster.
type PokemonRepository interface {
	// List returns the roster in its stored order.
	// Implementations must return a copy the caller is free to modify.
	List(ctx context.Context) (model.NameList, error)
}
