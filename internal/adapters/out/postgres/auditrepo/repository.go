package auditrepo

import (
	"context"

	"postal/internal/core/domain/model/audit"
	"postal/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
// The underlying table is append-only; no update or delete path exists.
type GormAuditRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB, tracker aggregateTracker) *GormAuditRepository {
	return &GormAuditRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends one immutable audit entry.
func (r *GormAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetByParcel retrieves all entries recorded for the given parcel, oldest
// first.
func (r *GormAuditRepository) GetByParcel(ctx context.Context, parcelID kernel.UUID) ([]*audit.Entry, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	if err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("timestamp, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}
