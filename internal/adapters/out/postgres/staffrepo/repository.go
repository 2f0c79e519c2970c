package staffrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffRepository implements ports.StaffRepository using GORM.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a chef or courier. Assignments are runtime state and are not stored.
func (r *GormStaffRepository) Add(ctx context.Context, member staff.Member) error {
	if member == nil {
		return errs.NewValueIsRequiredError("staff member")
	}
	if err := member.Validate(); err != nil {
		return err
	}

	dto := fromDomain(member)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("staff", member.ID())
		}
		return err
	}

	r.tracker.TrackAggregate(member.ID(), member)
	return nil
}

func (r *GormStaffRepository) GetAllChefs(ctx context.Context) ([]*staff.Chef, error) {
	dtos, err := r.byRole(ctx, staff.RoleChef)
	if err != nil {
		return nil, err
	}

	chefs := make([]*staff.Chef, 0, len(dtos))
	for _, dto := range dtos {
		c, err := chefToDomain(dto)
		if err != nil {
			return nil, err
		}
		chefs = append(chefs, c)
	}
	return chefs, nil
}

func (r *GormStaffRepository) GetAllCouriers(ctx context.Context) ([]*staff.Courier, error) {
	dtos, err := r.byRole(ctx, staff.RoleDelivery)
	if err != nil {
		return nil, err
	}

	couriers := make([]*staff.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := courierToDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}

func (r *GormStaffRepository) byRole(ctx context.Context, role staff.Role) ([]StaffDTO, error) {
	var dtos []StaffDTO
	if err := r.db.WithContext(ctx).Where("role = ?", string(role)).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return dtos, nil
}
