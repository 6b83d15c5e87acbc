package parcelrepo

import (
	"context"
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/ports"
	"postal/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
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

// Update saves an existing parcel to the database.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByID retrieves a parcel by its unique identifier.
func (r *GormParcelRepository) GetByID(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByToken retrieves a parcel by its tracking token.
func (r *GormParcelRepository) GetByToken(ctx context.Context, trackingToken string) (*parcel.Parcel, error) {
	if trackingToken == "" {
		return nil, errs.NewValueIsRequiredError("trackingToken")
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_token = ?", trackingToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", trackingToken)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindMatching retrieves all parcels satisfying the filter in identifier
// order. The SQL translation mirrors parcel.Filter.Matches constraint for
// constraint; absent fields emit no clause.
func (r *GormParcelRepository) FindMatching(
	ctx context.Context,
	filter parcel.Filter,
	page *ports.Page,
) ([]*parcel.Parcel, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&ParcelDTO{}), filter).Order("id")
	if page != nil {
		query = query.Offset(page.Offset()).Limit(page.Size)
	}

	var dtos []ParcelDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

func applyFilter(query *gorm.DB, filter parcel.Filter) *gorm.DB {
	if filter.TrackingToken != "" {
		query = query.Where("tracking_token = ?", filter.TrackingToken)
	}

	if filter.SenderID != nil {
		query = query.Where("sender_id = ?", filter.SenderID.Bytes())
	}
	if filter.RecipientID != nil {
		query = query.Where("recipient_id = ?", filter.RecipientID.Bytes())
	}
	if filter.OriginOfficeID != nil {
		query = query.Where("origin_id = ?", filter.OriginOfficeID.Bytes())
	}
	if filter.DestinationOfficeID != nil {
		query = query.Where("destination_id = ?", filter.DestinationOfficeID.Bytes())
	}

	if filter.FromWeight != nil {
		query = query.Where("weight >= ?", *filter.FromWeight)
	}
	if filter.ToWeight != nil {
		query = query.Where("weight <= ?", *filter.ToWeight)
	}
	if filter.FromPrice != nil {
		query = query.Where("price >= ?", *filter.FromPrice)
	}
	if filter.ToPrice != nil {
		query = query.Where("price <= ?", *filter.ToPrice)
	}

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", enumValues(filter.Statuses))
	}
	if len(filter.Tiers) > 0 {
		query = query.Where("tier IN ?", enumValues(filter.Tiers))
	}
	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", enumValues(filter.Categories))
	}

	return query
}

func enumValues[E ~int](values []E) []int {
	ints := make([]int, 0, len(values))
	for _, v := range values {
		ints = append(ints, int(v))
	}
	return ints
}
