package repository

import (
	"context"
	"errors"

	"github.com/blueharvest/bank/pkg/domain"
	"github.com/blueharvest/bank/pkg/repository"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository bound to db.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, id int64) (*domain.Account, error) {
	var row Account
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapAccountToDomain(&row), nil
}

func (r *accountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	var rows []Account
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapAccountsToDomain(rows), nil
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	row := mapAccountToModel(a)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	a.ID = row.ID
	return nil
}

func (r *accountRepository) Update(ctx context.Context, a *domain.Account) error {
	row := mapAccountToModel(a)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Account{}, id).Error
}

func (r *accountRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Account{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *accountRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Account, error) {
	var rows []Account
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapAccountsToDomain(rows), nil
}

func (r *accountRepository) DeleteByCustomer(ctx context.Context, customerID int64) error {
	return r.db.WithContext(ctx).Where("customer_id = ?", customerID).Delete(&Account{}).Error
}

func mapAccountToModel(a *domain.Account) Account {
	return Account{
		ID:            a.ID,
		Credit:        a.Credit,
		EstablishDate: a.EstablishDate,
		CustomerID:    a.CustomerID,
	}
}

func mapAccountToDomain(row *Account) *domain.Account {
	return &domain.Account{
		ID:            row.ID,
		Credit:        row.Credit,
		EstablishDate: row.EstablishDate,
		CustomerID:    row.CustomerID,
	}
}

func mapAccountsToDomain(rows []Account) []*domain.Account {
	accounts := make([]*domain.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, mapAccountToDomain(&rows[i]))
	}
	return accounts
}
