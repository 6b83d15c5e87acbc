// Package officerepo provides data transfer objects and mapping functions
// for post office persistence.
package officerepo

import (
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"

	"github.com/google/uuid"
)

// OfficeDTO represents the database structure for persisting post offices.
type OfficeDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	City     string
	Postcode string
	Street   string
}

// TableName specifies the database table name for office entities.
func (OfficeDTO) TableName() string {
	return "post_offices"
}

// fromDomain converts an office domain aggregate to its database
// representation.
func fromDomain(aggregate *office.Office) OfficeDTO {
	return OfficeDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		City:     aggregate.City(),
		Postcode: aggregate.Postcode(),
		Street:   aggregate.Street(),
	}
}

// toDomain converts a database DTO to an office domain aggregate.
func toDomain(dto OfficeDTO) (*office.Office, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return office.NewOffice(id, dto.Name, dto.City, dto.Postcode, dto.Street)
}
