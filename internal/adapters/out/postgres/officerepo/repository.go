package officerepo

import (
	"context"
	"errors"
	"strings"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"
	"postal/internal/core/ports"
	"postal/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOfficeRepository implements OfficeRepository using GORM.
type GormOfficeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOfficeRepository creates a new GORM office repository.
func NewGormOfficeRepository(db *gorm.DB, tracker aggregateTracker) *GormOfficeRepository {
	return &GormOfficeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new office to the database.
func (r *GormOfficeRepository) Add(ctx context.Context, aggregate *office.Office) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing office to the database.
func (r *GormOfficeRepository) Update(ctx context.Context, aggregate *office.Office) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OfficeDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an office by its unique identifier.
func (r *GormOfficeRepository) Get(ctx context.Context, id kernel.UUID) (*office.Office, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfficeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("postOffice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every office in identifier order.
func (r *GormOfficeRepository) GetAll(ctx context.Context) ([]*office.Office, error) {
	var dtos []OfficeDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindMatching retrieves all offices satisfying the filter in identifier
// order. Each present field narrows the result by case-insensitive
// substring, mirroring office.Filter.Matches.
func (r *GormOfficeRepository) FindMatching(
	ctx context.Context,
	filter office.Filter,
	page *ports.Page,
) ([]*office.Office, error) {
	query := r.db.WithContext(ctx).Model(&OfficeDTO{})
	query = applyContains(query, "name", filter.Name)
	query = applyContains(query, "city", filter.City)
	query = applyContains(query, "postcode", filter.Postcode)
	query = applyContains(query, "street", filter.Street)
	query = query.Order("id")

	if page != nil {
		query = query.Offset(page.Offset()).Limit(page.Size)
	}

	var dtos []OfficeDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Exists reports whether an office with the given identifier is stored.
func (r *GormOfficeRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OfficeDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes an office by its unique identifier.
func (r *GormOfficeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OfficeDTO{}, "id = ?", id.Bytes()).Error
}

func applyContains(query *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return query
	}

	return query.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
}

func toDomainSlice(dtos []OfficeDTO) ([]*office.Office, error) {
	offices := make([]*office.Office, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		offices = append(offices, o)
	}

	return offices, nil
}
