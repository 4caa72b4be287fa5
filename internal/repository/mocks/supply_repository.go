package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// SupplyRepository is a testify mock of repository.SupplyRepository.
type SupplyRepository struct {
	mock.Mock
}

func (m *SupplyRepository) List(ctx context.Context) ([]bson.M, error) {
	ret := m.Called(ctx)
	var items []bson.M
	if ret.Get(0) != nil {
		items = ret.Get(0).([]bson.M)
	}
	return items, ret.Error(1)
}

func (m *SupplyRepository) Insert(ctx context.Context, fields bson.M) error {
	ret := m.Called(ctx, fields)
	return ret.Error(0)
}

func (m *SupplyRepository) Update(ctx context.Context, id string, fields bson.M) (int64, error) {
	ret := m.Called(ctx, id, fields)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *SupplyRepository) Delete(ctx context.Context, id string) (int64, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}
