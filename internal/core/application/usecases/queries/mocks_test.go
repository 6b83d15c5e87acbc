package queries_test

import (
	"context"

	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) GetByID(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByToken(ctx context.Context, trackingToken string) (*parcel.Parcel, error) {
	args := m.Called(ctx, trackingToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) FindMatching(ctx context.Context, filter parcel.Filter, page *ports.Page) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) GetByParcel(ctx context.Context, parcelID kernel.UUID) ([]*audit.Entry, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}
