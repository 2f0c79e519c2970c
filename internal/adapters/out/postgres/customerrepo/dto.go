// Package customerrepo maps registered customers to the customers table.
// Carts live only in memory.
package customerrepo

import (
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
)

type CustomerDTO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement:false"`
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(32)"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	contact := c.Contact()
	return CustomerDTO{
		ID:      c.ID(),
		Name:    contact.Name(),
		Address: contact.Address(),
		Phone:   contact.Phone(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	contact, err := kernel.NewContact(dto.Name, dto.Address, dto.Phone)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(dto.ID, contact)
}
