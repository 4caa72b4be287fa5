// Package repository defines storage interfaces for the application's
// document collections, decoupled from the MongoDB driver.
package repository

import (
	"context"

	"github.com/HaqueArif/shine-on-server/internal/domain"
)

// UserRepository stores and retrieves registered accounts.
type UserRepository interface {
	// FindByEmail looks up an account by exact email match.
	// Returns ErrUserNotFound if no account exists for the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Insert persists a new account. Returns ErrDuplicateEntry if the email
	// is already taken.
	Insert(ctx context.Context, user *domain.User) error
}
