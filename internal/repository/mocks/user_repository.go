// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/HaqueArif/shine-on-server/internal/domain"
)

// UserRepository is a testify mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ret := m.Called(ctx, email)
	var user *domain.User
	if ret.Get(0) != nil {
		user = ret.Get(0).(*domain.User)
	}
	return user, ret.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	ret := m.Called(ctx, user)
	return ret.Error(0)
}
