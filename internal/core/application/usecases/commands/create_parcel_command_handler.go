package commands

import (
	"context"

	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/domain/services"
	"postal/internal/core/ports"
)

// CreateParcelCommandHandler handles the business logic for parcel intake.
// Resolves every referenced office and client, prices the parcel, assigns a
// fresh tracking token, and records the intake audit entry, all in one
// transaction.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	tokens     ports.TokenGenerator
	pricing    services.PriceCalculator
}

// NewCreateParcelCommandHandler creates a handler for parcel intake
// operations.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	tokens ports.TokenGenerator,
	pricing services.PriceCalculator,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		pricing:    pricing,
	}
}

// Handle processes the parcel intake command.
//
// The origin office, destination office, sender, and recipient must all
// exist; a missing reference fails the whole operation with an
// ObjectNotFoundError naming the reference. When the command carries no
// delivery tier the default tier is used. The new parcel starts in Created
// status and a RECEIVED audit entry is recorded at the origin office.
//
// Returns the created parcel so callers can expose the tracking token.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
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

	if _, err := uow.OfficeRepository().Get(ctx, cmd.OriginID()); err != nil {
		return nil, err
	}
	if _, err := uow.OfficeRepository().Get(ctx, cmd.DestinationID()); err != nil {
		return nil, err
	}
	if _, err := uow.ClientRepository().Get(ctx, cmd.SenderID()); err != nil {
		return nil, err
	}
	if _, err := uow.ClientRepository().Get(ctx, cmd.RecipientID()); err != nil {
		return nil, err
	}

	tier := cmd.Tier()
	if tier == parcel.TierUnknown {
		tier = parcel.TierDefault
	}

	price, err := h.pricing.Price(tier, cmd.Weight())
	if err != nil {
		return nil, err
	}

	newParcel, err := parcel.NewParcel(
		kernel.NewUUID(),
		h.tokens.NewToken(),
		cmd.SenderID(),
		cmd.RecipientID(),
		cmd.Weight(),
		price,
		tier,
		cmd.Category(),
		cmd.OriginID(),
		cmd.DestinationID(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return nil, err
	}

	if err = appendAuditEntry(ctx, uow, audit.Received, newParcel.ID(), newParcel.Origin()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}
