package memory

import (
	"context"

	"pokedex/internal/model"
	"pokedex/internal/repository"
)

// pokemonMemory keeps the roster in process memory. It is built once and only read afterwards,
// so it needs no locking.
type pokemonMemory struct {
	names model.NameList
}

// NewPokemonMemory returns a PokemonRepository backed by a private copy of names.
func NewPokemonMemory(names model.NameList) repository.PokemonRepository {
	return &pokemonMemory{names: names.Clone()}
}

func (r *pokemonMemory) List(ctx context.Context) (model.NameList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.names.Clone(), nil
}
