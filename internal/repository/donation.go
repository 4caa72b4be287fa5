package repository

import (
	"context"

	"github.com/HaqueArif/shine-on-server/internal/domain"
)

// DonationRepository stores donation records. Donations are append-only.
type DonationRepository interface {
	// List returns every donation, in no particular order.
	List(ctx context.Context) ([]domain.Donation, error)

	// Insert persists a new donation record.
	Insert(ctx context.Context, donation *domain.Donation) error
}
