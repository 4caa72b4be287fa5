package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/HaqueArif/shine-on-server/internal/repository"
	"github.com/HaqueArif/shine-on-server/internal/repository/mocks"
	"github.com/HaqueArif/shine-on-server/internal/service"
)

func TestSupplyService_Update_NotFound(t *testing.T) {
	// Arrange: a well-formed ObjectID that matches nothing.
	mockSupplyRepo := new(mocks.SupplyRepository)
	supplyService := service.NewSupplyService(mockSupplyRepo)
	ctx := context.Background()
	id := "65b9c2f1a2b3c4d5e6f70811"
	fields := bson.M{"title": "Water"}

	mockSupplyRepo.On("Update", ctx, id, fields).Return(int64(0), nil).Once()

	// Act
	err := supplyService.Update(ctx, id, fields)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrSupplyNotFound))
	mockSupplyRepo.AssertExpectations(t)
}

func TestSupplyService_Update_InvalidID(t *testing.T) {
	mockSupplyRepo := new(mocks.SupplyRepository)
	supplyService := service.NewSupplyService(mockSupplyRepo)
	ctx := context.Background()
	fields := bson.M{"title": "Water"}

	mockSupplyRepo.On("Update", ctx, "not-a-hex-id", fields).
		Return(int64(0), repository.ErrInvalidID).Once()

	err := supplyService.Update(ctx, "not-a-hex-id", fields)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidID))
	mockSupplyRepo.AssertExpectations(t)
}

func TestSupplyService_Update_Success(t *testing.T) {
	mockSupplyRepo := new(mocks.SupplyRepository)
	supplyService := service.NewSupplyService(mockSupplyRepo)
	ctx := context.Background()
	id := "65b9c2f1a2b3c4d5e6f70811"
	fields := bson.M{"amount": "200", "category": "food"}

	mockSupplyRepo.On("Update", ctx, id, fields).Return(int64(1), nil).Once()

	err := supplyService.Update(ctx, id, fields)

	assert.NoError(t, err)
	mockSupplyRepo.AssertExpectations(t)
}

func TestSupplyService_Delete_ReportsZeroForMissing(t *testing.T) {
	// Deleting a non-existent item is not an error; the count says 0.
	mockSupplyRepo := new(mocks.SupplyRepository)
	supplyService := service.NewSupplyService(mockSupplyRepo)
	ctx := context.Background()
	id := "65b9c2f1a2b3c4d5e6f70811"

	mockSupplyRepo.On("Delete", ctx, id).Return(int64(0), nil).Once()

	deleted, err := supplyService.Delete(ctx, id)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
	mockSupplyRepo.AssertExpectations(t)
}

func TestSupplyService_Delete_InvalidID(t *testing.T) {
	mockSupplyRepo := new(mocks.SupplyRepository)
	supplyService := service.NewSupplyService(mockSupplyRepo)
	ctx := context.Background()

	mockSupplyRepo.On("Delete", ctx, "bogus").Return(int64(0), repository.ErrInvalidID).Once()

	_, err := supplyService.Delete(ctx, "bogus")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidID))
	mockSupplyRepo.AssertExpectations(t)
}

func TestSupplyService_List_MapsStorageFault(t *testing.T) {
	mockSupplyRepo := new(mocks.SupplyRepository)
	supplyService := service.NewSupplyService(mockSupplyRepo)
	ctx := context.Background()

	mockSupplyRepo.On("List", ctx).Return(nil, errors.New("connection reset")).Once()

	_, err := supplyService.List(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInternalServer))
	mockSupplyRepo.AssertExpectations(t)
}
