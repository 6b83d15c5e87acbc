package commands

import (
	"context"

	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/parcel"
)

// UpdateParcelStatusCommandHandler handles direct status assignment.
//
// Unlike dispatch, this operation applies the target status without a
// transition-legality check; only the value itself is validated. The audit
// side effects depend on the target status:
//   - InTransit produces a SENT entry at the origin office
//   - Delivered produces a DELIVERED entry at the destination office
//   - Created produces no entry
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for direct status
// assignment operations.
func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status assignment command and returns the updated
// parcel.
func (h *UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateParcelStatusCommand,
) (*parcel.Parcel, error) {
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

	if err = aggregate.SetStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	switch cmd.Status() {
	case parcel.InTransit:
		err = appendAuditEntry(ctx, uow, audit.Sent, aggregate.ID(), aggregate.Origin())
	case parcel.Delivered:
		err = appendAuditEntry(ctx, uow, audit.Delivered, aggregate.ID(), aggregate.Destination())
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
