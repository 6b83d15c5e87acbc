// Package auditrepo provides data transfer objects and mapping functions
// for the append-only parcel audit trail.
package auditrepo

import (
	"time"

	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting audit entries.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Timestamp  time.Time
	Action     int
	ParcelID   uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID uuid.UUID `gorm:"type:uuid"`
	OfficeID   uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for audit entries.
func (EntryDTO) TableName() string {
	return "parcel_audit_entries"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:         entry.ID().Bytes(),
		Timestamp:  entry.Timestamp(),
		Action:     int(entry.Action()),
		ParcelID:   entry.Parcel().Bytes(),
		EmployeeID: entry.Employee().Bytes(),
		OfficeID:   entry.Office().Bytes(),
	}
}

// toDomain converts a database DTO to an audit entry using RestoreEntry.
func toDomain(dto EntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	officeID, err := kernel.UUIDFromBytes(dto.OfficeID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(id, dto.Timestamp, audit.Action(dto.Action), parcelID, employeeID, officeID)
}
