package commands

import (
	"context"

	"postal/internal/core/domain/model/office"
)

// UpdateOfficeCommandHandler handles post office updates.
type UpdateOfficeCommandHandler struct {
	uowFactory OfficeUoWFactory
}

// NewUpdateOfficeCommandHandler creates a handler for office updates.
func NewUpdateOfficeCommandHandler(uowFactory OfficeUoWFactory) UpdateOfficeCommandHandler {
	return UpdateOfficeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the office, replaces its attributes, and persists the result.
// Returns an ObjectNotFoundError when the office does not exist.
func (h *UpdateOfficeCommandHandler) Handle(ctx context.Context, cmd UpdateOfficeCommand) (*office.Office, error) {
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

	officeRepo := uow.OfficeRepository()
	aggregate, err := officeRepo.Get(ctx, cmd.OfficeID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.Name(), cmd.City(), cmd.Postcode(), cmd.Street()); err != nil {
		return nil, err
	}

	if err = officeRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
