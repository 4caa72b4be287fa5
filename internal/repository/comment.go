package repository

import (
	"context"

	"github.com/HaqueArif/shine-on-server/internal/domain"
)

// CommentRepository stores comment records. Comments are append-only.
type CommentRepository interface {
	// List returns every comment, in no particular order.
	List(ctx context.Context) ([]domain.Comment, error)

	// Insert persists a new comment record.
	Insert(ctx context.Context, comment *domain.Comment) error
}
