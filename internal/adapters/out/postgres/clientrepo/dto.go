// Package clientrepo provides data transfer objects and mapping functions
// for client persistence.
package clientrepo

import (
	"postal/internal/core/domain/model/client"
	"postal/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting clients.
type ClientDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client domain aggregate to its database
// representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:        aggregate.ID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
	}
}

// toDomain converts a database DTO to a client domain aggregate.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.NewClient(id, dto.FirstName, dto.LastName, dto.Email, dto.Phone)
}
