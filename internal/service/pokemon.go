package service

import (
	"context"
	"errors"
	"fmt"

	"pokedex/internal/model"
	"pokedex/internal/repository"
)

var ErrEmptyRoster = errors.New("pokemon roster is empty")

// PokemonListResult is the service-level DTO for the roster page.
type PokemonListResult struct {
	Items model.NameList `json:"data"`
	Total int            `json:"total"`
}

// PokemonService defines the use cases for the Pokémon pages.
type PokemonService interface {
	// List returns the whole roster, unfiltered and in stored order, with its length.
	List(ctx context.Context) (*PokemonListResult, error)
}

type pokemonService struct {
	repo repository.PokemonRepository
}

// NewPokemonService constructs a new PokemonService.
func NewPokemonService(repo repository.PokemonRepository) PokemonService {
	return &pokemonService{repo: repo}
}

func (s *pokemonService) List(ctx context.Context) (*PokemonListResult, error) {
	names, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	if len(names) == 0 {
		return nil, ErrEmptyRoster
	}
	return &PokemonListResult{Items: names, Total: names.Len()}, nil
}
