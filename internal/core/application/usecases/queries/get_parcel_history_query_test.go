package queries_test

import (
	"testing"
	"time"

	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelHistoryQuery_EmptyToken(t *testing.T) {
	_, err := queries.NewGetParcelHistoryQuery("")
	require.Error(t, err)
}

func TestGetParcelHistoryQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	stored, err := parcel.RestoreParcel(kernel.NewUUID(), "token-1", kernel.NewUUID(), kernel.NewUUID(),
		10, 402, parcel.InTransit, parcel.TierDefault, parcel.CategoryBooks, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	received, err := audit.NewEntry(kernel.NewUUID(), time.Now().Add(-time.Hour), audit.Received,
		stored.ID(), kernel.NewUUID(), stored.Origin())
	require.NoError(t, err)

	sent, err := audit.NewEntry(kernel.NewUUID(), time.Now(), audit.Sent,
		stored.ID(), kernel.NewUUID(), stored.Origin())
	require.NoError(t, err)

	query, err := queries.NewGetParcelHistoryQuery("token-1")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("GetByToken", ctx, "token-1").Return(stored, nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("GetByParcel", ctx, stored.ID()).Return([]*audit.Entry{received, sent}, nil).Once()

	handler := queries.NewGetParcelHistoryQueryHandler(parcelRepo, auditRepo)

	history, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, audit.Received, history[0].Action())
	assert.Equal(t, audit.Sent, history[1].Action())
	parcelRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestGetParcelHistoryQueryHandler_Handle_UnknownToken(t *testing.T) {
	ctx := t.Context()

	query, err := queries.NewGetParcelHistoryQuery("missing")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("GetByToken", ctx, "missing").
		Return(nil, errs.NewObjectNotFoundError("parcel", "missing")).Once()

	auditRepo := new(MockAuditRepository)

	handler := queries.NewGetParcelHistoryQueryHandler(parcelRepo, auditRepo)

	_, err = handler.Handle(ctx, query)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	auditRepo.AssertNotCalled(t, "GetByParcel")
}
