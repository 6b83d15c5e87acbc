package commands

import (
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrWeightIsInvalid = errors.New("weight must be greater than 0")
)

// CreateParcelCommand represents a request to register a new parcel for
// delivery. Encapsulates the sender, recipient, route endpoints, weight,
// content category, and an optional delivery tier.
//
// The delivery tier is optional on intake: TierUnknown means the caller
// did not choose one, and the handler substitutes the default tier.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	senderID      kernel.UUID
	recipientID   kernel.UUID
	weight        float64
	tier          parcel.DeliveryTier
	category      parcel.Category
	originID      kernel.UUID
	destinationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates that all referenced identifiers are valid, weight is positive,
// the category is valid, and the tier, when given, is valid.
// Returns an error if any validation fails.
func NewCreateParcelCommand(
	senderID kernel.UUID,
	recipientID kernel.UUID,
	weight float64,
	tier parcel.DeliveryTier,
	category parcel.Category,
	originID kernel.UUID,
	destinationID kernel.UUID,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setSenderID(senderID),
		parcelCommand.setRecipientID(recipientID),
		parcelCommand.setWeight(weight),
		parcelCommand.setTier(tier),
		parcelCommand.setCategory(category),
		parcelCommand.setOriginID(originID),
		parcelCommand.setDestinationID(destinationID),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// SenderID returns the identifier of the sending client.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// RecipientID returns the identifier of the receiving client.
func (c CreateParcelCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// Weight returns the parcel weight in kilograms.
func (c CreateParcelCommand) Weight() float64 {
	return c.weight
}

// Tier returns the requested delivery tier, or TierUnknown when the caller
// left the choice to the system.
func (c CreateParcelCommand) Tier() parcel.DeliveryTier {
	return c.tier
}

// Category returns the content category of the parcel.
func (c CreateParcelCommand) Category() parcel.Category {
	return c.category
}

// OriginID returns the identifier of the origin post office.
func (c CreateParcelCommand) OriginID() kernel.UUID {
	return c.originID
}

// DestinationID returns the identifier of the destination post office.
func (c CreateParcelCommand) DestinationID() kernel.UUID {
	return c.destinationID
}

func (c *CreateParcelCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *CreateParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateParcelCommand) setTier(tier parcel.DeliveryTier) error {
	if tier != parcel.TierUnknown {
		if err := tier.Validate(); err != nil {
			return err
		}
	}

	c.tier = tier
	return nil
}

func (c *CreateParcelCommand) setCategory(category parcel.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateParcelCommand) setOriginID(originID kernel.UUID) error {
	if err := originID.Validate(); err != nil {
		return err
	}

	c.originID = originID
	return nil
}

func (c *CreateParcelCommand) setDestinationID(destinationID kernel.UUID) error {
	if err := destinationID.Validate(); err != nil {
		return err
	}

	c.destinationID = destinationID
	return nil
}
