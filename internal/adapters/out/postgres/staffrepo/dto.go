// Package staffrepo maps chefs and couriers to a single staff table keyed by id,
// which keeps ids unique across both roles.
package staffrepo

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"
)

type StaffDTO struct {
	ID      string `gorm:"type:varchar(64);primaryKey"`
	Role    string `gorm:"type:varchar(16);not null;index"`
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(32)"`
}

func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(m staff.Member) StaffDTO {
	c := m.Contact()
	return StaffDTO{
		ID:      m.ID(),
		Role:    string(m.Role()),
		Name:    c.Name(),
		Address: c.Address(),
		Phone:   c.Phone(),
	}
}

func contactOf(dto StaffDTO) (kernel.Contact, error) {
	return kernel.NewContact(dto.Name, dto.Address, dto.Phone)
}

func chefToDomain(dto StaffDTO) (*staff.Chef, error) {
	if staff.Role(dto.Role) != staff.RoleChef {
		return nil, wrongRole(dto, staff.RoleChef)
	}
	c, err := contactOf(dto)
	if err != nil {
		return nil, err
	}
	return staff.NewChef(dto.ID, c)
}

func courierToDomain(dto StaffDTO) (*staff.Courier, error) {
	if staff.Role(dto.Role) != staff.RoleDelivery {
		return nil, wrongRole(dto, staff.RoleDelivery)
	}
	c, err := contactOf(dto)
	if err != nil {
		return nil, err
	}
	return staff.NewCourier(dto.ID, c)
}

func wrongRole(dto StaffDTO, want staff.Role) error {
	return errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("staff %s has role %q, want %q", dto.ID, dto.Role, want))
}
