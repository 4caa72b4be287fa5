package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HaqueArif/shine-on-server/internal/domain"
	"github.com/HaqueArif/shine-on-server/internal/repository"
)

// CommentService is a passthrough over the comment collection.
type CommentService struct {
	commentRepo repository.CommentRepository
	now         func() time.Time
}

// NewCommentService creates a CommentService with an injectable clock.
func NewCommentService(commentRepo repository.CommentRepository, now func() time.Time) *CommentService {
	if commentRepo == nil {
		panic("CommentRepository cannot be nil for CommentService")
	}
	if now == nil {
		now = time.Now
	}
	return &CommentService{commentRepo: commentRepo, now: now}
}

// List returns every comment.
func (s *CommentService) List(ctx context.Context) ([]domain.Comment, error) {
	comments, err := s.commentRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Database error while listing comments")
		return nil, ErrInternalServer
	}
	return comments, nil
}

// Create stores an arbitrary payload stamped with the submission time.
func (s *CommentService) Create(ctx context.Context, data any) error {
	comment := &domain.Comment{
		Data:        data,
		CurrentDate: s.now(),
	}
	if err := s.commentRepo.Insert(ctx, comment); err != nil {
		logrus.WithError(err).Error("Database error during comment creation")
		return ErrInternalServer
	}
	return nil
}
