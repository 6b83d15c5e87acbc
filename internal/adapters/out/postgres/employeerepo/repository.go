package employeerepo

import (
	"context"
	"errors"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/staff"
	"postal/internal/core/ports"
	"postal/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM.
type GormEmployeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEmployeeRepository creates a new GORM employee repository.
func NewGormEmployeeRepository(db *gorm.DB, tracker aggregateTracker) *GormEmployeeRepository {
	return &GormEmployeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new employee to the database.
func (r *GormEmployeeRepository) Add(ctx context.Context, aggregate *staff.Employee) error {
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

// Update saves an existing employee to the database.
func (r *GormEmployeeRepository) Update(ctx context.Context, aggregate *staff.Employee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EmployeeDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an employee by its unique identifier.
func (r *GormEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves employees in identifier order.
func (r *GormEmployeeRepository) GetAll(ctx context.Context, page *ports.Page) ([]*staff.Employee, error) {
	query := r.db.WithContext(ctx).Model(&EmployeeDTO{}).Order("id")
	if page != nil {
		query = query.Offset(page.Offset()).Limit(page.Size)
	}

	var dtos []EmployeeDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByOffice retrieves employees assigned to the given office in identifier
// order.
func (r *GormEmployeeRepository) GetByOffice(
	ctx context.Context,
	officeID kernel.UUID,
	page *ports.Page,
) ([]*staff.Employee, error) {
	if err := officeID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Model(&EmployeeDTO{}).Where("office_id = ?", officeID.Bytes()).Order("id")
	if page != nil {
		query = query.Offset(page.Offset()).Limit(page.Size)
	}

	var dtos []EmployeeDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// FindFirstByRole retrieves the first stored employee holding the given
// role, system-wide. Identifier order makes the choice deterministic.
func (r *GormEmployeeRepository) FindFirstByRole(ctx context.Context, role staff.Role) (*staff.Employee, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).Order("id").First(&dto, "role = ?", int(role)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", role.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether an employee with the given identifier is stored.
func (r *GormEmployeeRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&EmployeeDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes an employee by its unique identifier.
func (r *GormEmployeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&EmployeeDTO{}, "id = ?", id.Bytes()).Error
}

func toDomainSlice(dtos []EmployeeDTO) ([]*staff.Employee, error) {
	employees := make([]*staff.Employee, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, nil
}
