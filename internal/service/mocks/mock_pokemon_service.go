package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/service"
)

type MockPokemonService struct {
	mock.Mock
}

func (m *MockPokemonService) List(ctx context.Context) (*service.PokemonListResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PokemonListResult), args.Error(1)
}
