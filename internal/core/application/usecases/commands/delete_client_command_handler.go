package commands

import (
	"context"

	"postal/internal/pkg/errs"
)

// DeleteClientCommandHandler handles client removal.
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewDeleteClientCommandHandler creates a handler for client removal.
func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the client. Returns an ObjectNotFoundError when no client
// with the given identifier exists.
func (h *DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
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

	clientRepo := uow.ClientRepository()
	exists, err := clientRepo.Exists(ctx, cmd.ClientID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("clientId", cmd.ClientID())
	}

	if err = clientRepo.Delete(ctx, cmd.ClientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
