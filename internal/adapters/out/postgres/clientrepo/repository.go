package clientrepo

import (
	"context"
	"errors"

	"postal/internal/core/domain/model/client"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/ports"
	"postal/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new client to the database.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
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

// Update saves an existing client to the database.
func (r *GormClientRepository) Update(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a client by its unique identifier.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves clients in identifier order.
func (r *GormClientRepository) GetAll(ctx context.Context, page *ports.Page) ([]*client.Client, error) {
	query := r.db.WithContext(ctx).Model(&ClientDTO{}).Order("id")
	if page != nil {
		query = query.Offset(page.Offset()).Limit(page.Size)
	}

	var dtos []ClientDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	clients := make([]*client.Client, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, nil
}

// Exists reports whether a client with the given identifier is stored.
func (r *GormClientRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes a client by its unique identifier.
func (r *GormClientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ClientDTO{}, "id = ?", id.Bytes()).Error
}
