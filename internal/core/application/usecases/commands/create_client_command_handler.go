package commands

import (
	"context"

	"postal/internal/core/domain/model/client"
	"postal/internal/core/domain/model/kernel"
)

// CreateClientCommandHandler handles client registration.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client registration command and returns the created
// client.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newClient, err := client.NewClient(kernel.NewUUID(), cmd.FirstName(), cmd.LastName(), cmd.Email(), cmd.Phone())
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

	if err = uow.ClientRepository().Add(ctx, newClient); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newClient, nil
}
