package commands

import (
	"context"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
)

// CreateOfficeCommandHandler handles registration of new post offices.
type CreateOfficeCommandHandler struct {
	uowFactory OfficeUoWFactory
}

// NewCreateOfficeCommandHandler creates a handler for office registration.
func NewCreateOfficeCommandHandler(uowFactory OfficeUoWFactory) CreateOfficeCommandHandler {
	return CreateOfficeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the office registration command and returns the created
// office.
func (h *CreateOfficeCommandHandler) Handle(ctx context.Context, cmd CreateOfficeCommand) (*office.Office, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOffice, err := office.NewOffice(kernel.NewUUID(), cmd.Name(), cmd.City(), cmd.Postcode(), cmd.Street())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OfficeRepository().Add(ctx, newOffice); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOffice, nil
}
