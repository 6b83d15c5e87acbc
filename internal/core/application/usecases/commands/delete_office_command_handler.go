package commands

import (
	"context"

	"postal/internal/pkg/errs"
)

// DeleteOfficeCommandHandler handles post office removal.
type DeleteOfficeCommandHandler struct {
	uowFactory OfficeUoWFactory
}

// NewDeleteOfficeCommandHandler creates a handler for office removal.
func NewDeleteOfficeCommandHandler(uowFactory OfficeUoWFactory) DeleteOfficeCommandHandler {
	return DeleteOfficeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the office. Returns an ObjectNotFoundError when no office
// with the given identifier exists.
func (h *DeleteOfficeCommandHandler) Handle(ctx context.Context, cmd DeleteOfficeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	officeRepo := uow.OfficeRepository()
	exists, err := officeRepo.Exists(ctx, cmd.OfficeID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("postOfficeId", cmd.OfficeID())
	}

	if err = officeRepo.Delete(ctx, cmd.OfficeID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
