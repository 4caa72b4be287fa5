package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/HaqueArif/shine-on-server/internal/domain"
)

// CommentRepository is a testify mock of repository.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) List(ctx context.Context) ([]domain.Comment, error) {
	ret := m.Called(ctx)
	var comments []domain.Comment
	if ret.Get(0) != nil {
		comments = ret.Get(0).([]domain.Comment)
	}
	return comments, ret.Error(1)
}

func (m *CommentRepository) Insert(ctx context.Context, comment *domain.Comment) error {
	ret := m.Called(ctx, comment)
	return ret.Error(0)
}
