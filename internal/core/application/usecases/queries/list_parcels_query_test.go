package queries_test

import (
	"testing"

	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListParcelsQuery(t *testing.T) {
	filter := parcel.Filter{Statuses: []parcel.Status{parcel.Created}}
	page := &ports.Page{Number: 1, Size: 20}

	query, err := queries.NewListParcelsQuery(filter, page)

	require.NoError(t, err)
	assert.NoError(t, query.Validate())
	assert.Equal(t, filter, query.Filter())
	assert.Equal(t, page, query.Page())
}

func TestNewListParcelsQuery_EmptyFilterFullScan(t *testing.T) {
	query, err := queries.NewListParcelsQuery(parcel.Filter{}, nil)

	require.NoError(t, err)
	assert.True(t, query.Filter().IsEmpty())
	assert.Nil(t, query.Page())
}

func TestNewListParcelsQuery_InvalidEnumValues(t *testing.T) {
	_, err := queries.NewListParcelsQuery(parcel.Filter{Statuses: []parcel.Status{parcel.Status(99)}}, nil)
	require.Error(t, err)

	_, err = queries.NewListParcelsQuery(parcel.Filter{Tiers: []parcel.DeliveryTier{parcel.TierUnknown}}, nil)
	require.Error(t, err)

	_, err = queries.NewListParcelsQuery(parcel.Filter{Categories: []parcel.Category{parcel.CategoryUnknown}}, nil)
	require.Error(t, err)
}

func TestListParcelsQuery_ValidateNotConstructed(t *testing.T) {
	var query queries.ListParcelsQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrListParcelsQueryIsNotConstructed)
}

func TestListParcelsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	stored, err := parcel.RestoreParcel(kernel.NewUUID(), "token-1", kernel.NewUUID(), kernel.NewUUID(),
		10, 402, parcel.Created, parcel.TierDefault, parcel.CategoryBooks, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	filter := parcel.Filter{Statuses: []parcel.Status{parcel.Created}}
	page := &ports.Page{Number: 0, Size: 10}

	query, err := queries.NewListParcelsQuery(filter, page)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("FindMatching", ctx, filter, page).Return([]*parcel.Parcel{stored}, nil).Once()

	handler := queries.NewListParcelsQueryHandler(parcelRepo)

	found, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.True(t, stored.IsEqual(found[0]))
	parcelRepo.AssertExpectations(t)
}

func TestListParcelsQueryHandler_Handle_NotConstructedQuery(t *testing.T) {
	parcelRepo := new(MockParcelRepository)
	handler := queries.NewListParcelsQueryHandler(parcelRepo)

	_, err := handler.Handle(t.Context(), queries.ListParcelsQuery{})

	assert.ErrorIs(t, err, queries.ErrListParcelsQueryIsNotConstructed)
	parcelRepo.AssertNotCalled(t, "FindMatching")
}
