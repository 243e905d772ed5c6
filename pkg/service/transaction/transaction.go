// Package transaction implements the transaction ledger. The ledger is
// append-only: transactions are created and read, never updated or deleted.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/blueharvest/bank/pkg/domain"
	"github.com/blueharvest/bank/pkg/repository"
)

// Service provides creation and lookup of transaction records. It does not
// validate business rules; callers, notably the account-opening workflow, are
// responsible for passing a transaction with a correct account and amount.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a transaction ledger service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Get returns the transaction with the given id, or (nil, nil) if none exists.
func (s *Service) Get(ctx context.Context, id int64) (t *domain.Transaction, err error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		t, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List returns all transactions.
func (s *Service) List(ctx context.Context) (transactions []*domain.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		transactions, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// ListForAccount returns all transactions posted against the given account,
// matched on account id. The list is empty when the account has none.
func (s *Service) ListForAccount(ctx context.Context, accountID int64) (transactions []*domain.Transaction, err error) {
	if accountID <= 0 {
		return nil, domain.ErrInvalidID
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		transactions, err = repo.ListByAccount(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// Create persists a new transaction and returns it with its assigned id.
// TransactionTime is stamped with the current time when the caller left it
// unset.
func (s *Service) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	if t == nil {
		return nil, domain.ErrNilEntity
	}
	if t.TransactionTime.IsZero() {
		t.TransactionTime = time.Now().UTC()
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, t)
	})
	if err != nil {
		s.logger.Error("transaction creation failed", "error", err, "accountID", t.AccountID)
		return nil, err
	}
	s.logger.Info("transaction created", "transactionID", t.ID, "accountID", t.AccountID)
	return t, nil
}
