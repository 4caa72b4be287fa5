package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HaqueArif/shine-on-server/internal/domain"
	"github.com/HaqueArif/shine-on-server/internal/repository"
)

// DonationService handles donation submission and the monthly report.
type DonationService struct {
	donationRepo repository.DonationRepository
	now          func() time.Time
}

// NewDonationService creates a DonationService. The clock is injectable so
// the rolling report window is deterministic under test.
func NewDonationService(donationRepo repository.DonationRepository, now func() time.Time) *DonationService {
	if donationRepo == nil {
		panic("DonationRepository cannot be nil for DonationService")
	}
	if now == nil {
		now = time.Now
	}
	return &DonationService{donationRepo: donationRepo, now: now}
}

// Create stores a donation with the submission time and a fixed Pending status.
func (s *DonationService) Create(ctx context.Context, donationInfo map[string]any) error {
	donation := &domain.Donation{
		DonationInfo: donationInfo,
		DonationDate: s.now(),
		Status:       domain.DonationStatusPending,
	}
	if err := s.donationRepo.Insert(ctx, donation); err != nil {
		logrus.WithError(err).Error("Database error during donation creation")
		return ErrInternalServer
	}
	logrus.WithField("donation_id", donation.ID.Hex()).Info("Donation recorded")
	return nil
}

// Report loads all donations and summarizes the recent window against the
// service clock. The raw record list is returned alongside the totals.
func (s *DonationService) Report(ctx context.Context) (map[string]float64, []domain.Donation, error) {
	donations, err := s.donationRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Database error while loading donations for report")
		return nil, nil, ErrInternalServer
	}
	return SummarizeRecent(donations, s.now()), donations, nil
}

// SummarizeRecent totals donation amounts per calendar month over a rolling
// window: the month of now plus the two preceding months. The window starts
// on the first day of the month two months before now's month; records dated
// earlier are excluded from the totals (records are never dated in the
// future, so no upper bound is applied).
//
// Keys are "<Month> <Year>", e.g. "January 2024". A donation whose
// donationInfo.donatedField.amount is missing or non-numeric contributes
// nothing to its month's total and is logged; it still appears in the raw
// list the caller returns.
func SummarizeRecent(donations []domain.Donation, now time.Time) map[string]float64 {
	windowStart := time.Date(now.Year(), now.Month()-2, 1, 0, 0, 0, 0, now.Location())

	monthly := make(map[string]float64)
	for _, donation := range donations {
		if donation.DonationDate.Before(windowStart) {
			continue
		}
		key := fmt.Sprintf("%s %d", donation.DonationDate.Month(), donation.DonationDate.Year())
		amount, ok := donatedAmount(donation.DonationInfo)
		if !ok {
			logrus.WithField("donation_id", donation.ID.Hex()).
				Warn("Donation has missing or non-numeric amount, counted as 0")
		}
		monthly[key] += amount
	}
	return monthly
}

// donatedAmount digs donationInfo.donatedField.amount out of the raw payload
// and coerces it to a float64. Amounts arrive as JSON numbers or strings
// depending on the client form.
func donatedAmount(info map[string]any) (float64, bool) {
	// Nested documents come back as primitive.M from the driver but as
	// plain map[string]any when bound from a JSON request body.
	var field map[string]any
	switch m := info["donatedField"].(type) {
	case map[string]any:
		field = m
	case primitive.M:
		field = m
	default:
		return 0, false
	}
	switch v := field["amount"].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
