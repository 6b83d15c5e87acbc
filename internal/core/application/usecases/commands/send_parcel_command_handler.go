package commands

import (
	"context"

	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/parcel"
)

// SendParcelCommandHandler handles the business logic for parcel dispatch.
// Dispatch is a guarded transition: it is legal only from Created or
// InTransit, and a parcel already in transit may be dispatched again.
type SendParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewSendParcelCommandHandler creates a handler for dispatch operations.
func NewSendParcelCommandHandler(uowFactory ParcelUoWFactory) SendParcelCommandHandler {
	return SendParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
//
// Loads the parcel by tracking token, advances it to InTransit through the
// guarded transition, and records a SENT audit entry at the origin office.
// A re-dispatch of a parcel already in transit keeps the status unchanged
// but still produces a SENT entry. Dispatching a delivered parcel fails.
//
// Returns the updated parcel.
func (h *SendParcelCommandHandler) Handle(ctx context.Context, cmd SendParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.GetByToken(ctx, cmd.TrackingToken())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Send(); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = appendAuditEntry(ctx, uow, audit.Sent, aggregate.ID(), aggregate.Origin()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
