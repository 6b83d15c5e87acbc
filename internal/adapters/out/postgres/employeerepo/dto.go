// Package employeerepo provides data transfer objects and mapping functions
// for employee persistence.
package employeerepo

import (
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// EmployeeDTO represents the database structure for persisting employees.
// Role carries an index because audit recording resolves the acting
// employee by role.
type EmployeeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string
	LastName  string
	Role      int       `gorm:"index"`
	OfficeID  uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "employees"
}

// fromDomain converts an employee domain aggregate to its database
// representation.
func fromDomain(aggregate *staff.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:        aggregate.ID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Role:      int(aggregate.Role()),
		OfficeID:  aggregate.Office().Bytes(),
	}
}

// toDomain converts a database DTO to an employee domain aggregate.
func toDomain(dto EmployeeDTO) (*staff.Employee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	officeID, err := kernel.UUIDFromBytes(dto.OfficeID[:])
	if err != nil {
		return nil, err
	}

	return staff.NewEmployee(id, dto.FirstName, dto.LastName, staff.Role(dto.Role), officeID)
}
