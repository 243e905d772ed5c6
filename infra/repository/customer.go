// Package repository implements the data-access contracts from
// pkg/repository on top of GORM and postgres.
package repository

import (
	"context"
	"errors"

	"github.com/blueharvest/bank/pkg/domain"
	"github.com/blueharvest/bank/pkg/repository"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository bound to db.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	var row Customer
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapCustomerToDomain(&row), nil
}

func (r *customerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	var rows []Customer
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	customers := make([]*domain.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, mapCustomerToDomain(&rows[i]))
	}
	return customers, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	row := mapCustomerToModel(c)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	c.ID = row.ID
	return nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	row := mapCustomerToModel(c)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Customer{}, id).Error
}

func (r *customerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Customer{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func mapCustomerToModel(c *domain.Customer) Customer {
	return Customer{
		ID:       c.ID,
		Name:     c.Name,
		Surname:  c.Surname,
		Address:  c.Address,
		Postcode: c.Postcode,
	}
}

func mapCustomerToDomain(row *Customer) *domain.Customer {
	return &domain.Customer{
		ID:       row.ID,
		Name:     row.Name,
		Surname:  row.Surname,
		Address:  row.Address,
		Postcode: row.Postcode,
	}
}
