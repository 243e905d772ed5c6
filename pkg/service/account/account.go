// Package account implements the account-opening workflow: creating an
// account for an existing customer and recording its opening balance as the
// account's first transaction, with an all-or-nothing outcome.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blueharvest/bank/pkg/domain"
	"github.com/blueharvest/bank/pkg/repository"
)

// Service orchestrates account creation and the surrounding account CRUD.
//
// There is a narrow window between the customer-existence check and the
// account insert in which the customer could be deleted concurrently. The
// workflow does not serialize around it; the store's foreign-key constraint
// on accounts.customer_id is the correctness backstop, failing the insert
// and rolling back the unit of work.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates an account service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Get returns the account with the given id, or (nil, nil) if none exists.
func (s *Service) Get(ctx context.Context, id int64) (a *domain.Account, err error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns all accounts.
func (s *Service) List(ctx context.Context) (accounts []*domain.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accounts, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Create opens an account for an existing customer and posts its opening
// transaction, all inside one unit of work:
//
//  1. confirm the referenced customer exists, otherwise fail with
//     ErrCustomerNotFound and write nothing;
//  2. insert the account, stamping its establish date;
//  3. insert the opening transaction carrying the account's initial credit.
//
// A failure at any step rolls back every earlier write in the same call: an
// account without its opening transaction is never observable.
func (s *Service) Create(ctx context.Context, a *domain.Account) (created *domain.Account, err error) {
	if a == nil {
		return nil, domain.ErrNilEntity
	}
	logger := s.logger.With("customerID", a.CustomerID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		found, err := customers.Exists(ctx, a.CustomerID)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrCustomerNotFound
		}

		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct := &domain.Account{
			Credit:        a.Credit,
			CustomerID:    a.CustomerID,
			EstablishDate: time.Now().UTC(),
		}
		if err := accounts.Create(ctx, acct); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrAccountCreationFailed, err)
		}

		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		opening := &domain.Transaction{
			Amount:          acct.Credit,
			TransactionTime: time.Now().UTC(),
			AccountID:       acct.ID,
		}
		if err := ledger.Create(ctx, opening); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrTransactionCreationFailed, err)
		}
		created = acct
		return nil
	})
	if err != nil {
		logger.Warn("account opening failed", "error", err)
		return nil, err
	}
	logger.Info("account opened", "accountID", created.ID, "credit", created.Credit)
	return created, nil
}

// Update replaces the account's credit and owning customer after re-resolving
// the customer through the directory. The establish date is carried over from
// the stored row, it is set once at creation. Returns false, without error,
// when the account does not exist or its customer no longer does. Transactions
// are left untouched.
func (s *Service) Update(ctx context.Context, a *domain.Account) (ok bool, err error) {
	if a == nil {
		return false, domain.ErrNilEntity
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		stored, err := accounts.Get(ctx, a.ID)
		if err != nil {
			return err
		}
		if stored == nil {
			s.logger.Warn("account not found", "accountID", a.ID)
			return nil
		}
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		owner, err := customers.Get(ctx, a.CustomerID)
		if err != nil {
			return err
		}
		if owner == nil {
			s.logger.Warn("customer not found", "customerID", a.CustomerID)
			return nil
		}
		a.EstablishDate = stored.EstablishDate
		if err := accounts.Update(ctx, a); err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Delete removes the account and, in the same unit of work, the transactions
// posted against it. It returns false, without error, when no account with
// that id exists.
func (s *Service) Delete(ctx context.Context, id int64) (ok bool, err error) {
	if id <= 0 {
		return false, domain.ErrInvalidID
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		found, err := accounts.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			s.logger.Warn("account not found", "accountID", id)
			return nil
		}
		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		if err := ledger.DeleteByAccount(ctx, id); err != nil {
			return err
		}
		if err := accounts.Delete(ctx, id); err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info("account deleted", "accountID", id)
	}
	return ok, nil
}

// ListForCustomer returns all accounts owned by the given customer, matched
// on customer id. The list is empty when the customer owns none.
func (s *Service) ListForCustomer(ctx context.Context, customerID int64) (accounts []*domain.Account, err error) {
	if customerID <= 0 {
		return nil, domain.ErrInvalidID
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		accounts, err = repo.ListByCustomer(ctx, customerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
