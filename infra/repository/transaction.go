package repository

import (
	"context"
	"errors"

	"github.com/blueharvest/bank/pkg/domain"
	"github.com/blueharvest/bank/pkg/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository bound to db.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Get(ctx context.Context, id int64) (*domain.Transaction, error) {
	var row Transaction
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapTransactionToDomain(&row), nil
}

func (r *transactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	var rows []Transaction
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapTransactionsToDomain(rows), nil
}

func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	row := Transaction{
		ID:              t.ID,
		Amount:          t.Amount,
		TransactionTime: t.TransactionTime,
		AccountID:       t.AccountID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	t.ID = row.ID
	return nil
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	var rows []Transaction
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapTransactionsToDomain(rows), nil
}

func (r *transactionRepository) DeleteByAccount(ctx context.Context, accountID int64) error {
	return r.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&Transaction{}).Error
}

func mapTransactionToDomain(row *Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:              row.ID,
		Amount:          row.Amount,
		TransactionTime: row.TransactionTime,
		AccountID:       row.AccountID,
	}
}

func mapTransactionsToDomain(rows []Transaction) []*domain.Transaction {
	transactions := make([]*domain.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, mapTransactionToDomain(&rows[i]))
	}
	return transactions
}
