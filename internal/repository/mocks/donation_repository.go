package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/HaqueArif/shine-on-server/internal/domain"
)

// DonationRepository is a testify mock of repository.DonationRepository.
type DonationRepository struct {
	mock.Mock
}

func (m *DonationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	ret := m.Called(ctx)
	var donations []domain.Donation
	if ret.Get(0) != nil {
		donations = ret.Get(0).([]domain.Donation)
	}
	return donations, ret.Error(1)
}

func (m *DonationRepository) Insert(ctx context.Context, donation *domain.Donation) error {
	ret := m.Called(ctx, donation)
	return ret.Error(0)
}
