package commands

import (
	"context"

	"postal/internal/core/domain/model/client"
)

// UpdateClientCommandHandler handles client updates.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewUpdateClientCommandHandler creates a handler for client updates.
func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the client, replaces its attributes, and persists the result.
// Returns an ObjectNotFoundError when the client does not exist.
func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) (*client.Client, error) {
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

	clientRepo := uow.ClientRepository()
	aggregate, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.FirstName(), cmd.LastName(), cmd.Email(), cmd.Phone()); err != nil {
		return nil, err
	}

	if err = clientRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
