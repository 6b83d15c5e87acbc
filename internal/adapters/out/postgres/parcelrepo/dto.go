// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. This package implements the repository pattern for
// the parcel domain aggregate, handling the conversion between domain
// entities and database representations.
package parcelrepo

import (
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The tracking token carries a unique index because it is the
// public lookup key.
type ParcelDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingToken string    `gorm:"uniqueIndex"`
	SenderID      uuid.UUID `gorm:"type:uuid;index"`
	RecipientID   uuid.UUID `gorm:"type:uuid;index"`
	Weight        float64
	Price         float64
	Status        int `gorm:"index"`
	Tier          int
	Category      int
	OriginID      uuid.UUID `gorm:"type:uuid;index"`
	DestinationID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database
// representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:            aggregate.ID().Bytes(),
		TrackingToken: aggregate.TrackingToken(),
		SenderID:      aggregate.Sender().Bytes(),
		RecipientID:   aggregate.Recipient().Bytes(),
		Weight:        aggregate.Weight(),
		Price:         aggregate.Price(),
		Status:        int(aggregate.Status()),
		Tier:          int(aggregate.Tier()),
		Category:      int(aggregate.Category()),
		OriginID:      aggregate.Origin().Bytes(),
		DestinationID: aggregate.Destination().Bytes(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using
// RestoreParcel, which revalidates every field.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	originID, err := kernel.UUIDFromBytes(dto.OriginID[:])
	if err != nil {
		return nil, err
	}

	destinationID, err := kernel.UUIDFromBytes(dto.DestinationID[:])
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingToken,
		senderID,
		recipientID,
		dto.Weight,
		dto.Price,
		parcel.Status(dto.Status),
		parcel.DeliveryTier(dto.Tier),
		parcel.Category(dto.Category),
		originID,
		destinationID,
	)
}
