package cache_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mesto/internal/api/domain/entities"
)

// mockUserRepository - мок repositories.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*entities.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id, name, about string) (*entities.User, error) {
	args := m.Called(ctx, id, name, about)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}

func (m *mockUserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*entities.User, error) {
	args := m.Called(ctx, id, avatar)
	u, _ := args.Get(0).(*entities.User)
	return u, args.Error(1)
}
