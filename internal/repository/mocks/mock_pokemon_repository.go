package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedex/internal/model"
)

type MockPokemonRepository struct {
	mock.Mock
}

func (m *MockPokemonRepository) List(ctx context.Context) (model.NameList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.NameList), args.Error(1)
}
