package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/HaqueArif/shine-on-server/internal/repository"
)

// SupplyService is a passthrough over the supply collection: no business
// rules, no field validation beyond what the storage layer enforces.
type SupplyService struct {
	supplyRepo repository.SupplyRepository
}

// NewSupplyService creates a SupplyService.
func NewSupplyService(supplyRepo repository.SupplyRepository) *SupplyService {
	if supplyRepo == nil {
		panic("SupplyRepository cannot be nil for SupplyService")
	}
	return &SupplyService{supplyRepo: supplyRepo}
}

// List returns every supply document.
func (s *SupplyService) List(ctx context.Context) ([]bson.M, error) {
	items, err := s.supplyRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Database error while listing supplies")
		return nil, ErrInternalServer
	}
	return items, nil
}

// Create stores the given fields verbatim as a new supply document.
func (s *SupplyService) Create(ctx context.Context, fields bson.M) error {
	if err := s.supplyRepo.Insert(ctx, fields); err != nil {
		logrus.WithError(err).Error("Database error during supply creation")
		return ErrInternalServer
	}
	return nil
}

// Update overwrites exactly the provided fields on the item with the given id.
// Returns ErrInvalidID for malformed ids and ErrSupplyNotFound when no
// document matches.
func (s *SupplyService) Update(ctx context.Context, id string, fields bson.M) error {
	matched, err := s.supplyRepo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return ErrInvalidID
		}
		logrus.WithError(err).WithField("item_id", id).Error("Database error during supply update")
		return ErrInternalServer
	}
	if matched == 0 {
		return ErrSupplyNotFound
	}
	return nil
}

// Delete removes the item with the given id and reports how many documents
// were removed (0 or 1). A missing item is not an error here; the count says so.
func (s *SupplyService) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.supplyRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return 0, ErrInvalidID
		}
		logrus.WithError(err).WithField("item_id", id).Error("Database error during supply deletion")
		return 0, ErrInternalServer
	}
	return deleted, nil
}
