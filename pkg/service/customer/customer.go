// Package customer implements the customer directory: the source of truth for
// customer records and for "does this customer exist" checks.
package customer

import (
	"context"
	"log/slog"

	"github.com/blueharvest/bank/pkg/domain"
	"github.com/blueharvest/bank/pkg/repository"
)

// Service provides customer lookup, existence checks and CRUD. Field-level
// validation is a boundary concern and is not re-checked here.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// NewService creates a customer directory service.
func NewService(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Get returns the customer with the given id, or (nil, nil) if none exists.
func (s *Service) Get(ctx context.Context, id int64) (c *domain.Customer, err error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		c, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all customers.
func (s *Service) List(ctx context.Context) (customers []*domain.Customer, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		customers, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// Create persists a new customer and returns it with its assigned id.
func (s *Service) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if c == nil {
		return nil, domain.ErrNilEntity
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, c)
	})
	if err != nil {
		s.logger.Error("customer creation failed", "error", err)
		return nil, err
	}
	s.logger.Info("customer created", "customerID", c.ID)
	return c, nil
}

// Update replaces the stored customer. It returns false, without error, when
// no customer with that id exists.
func (s *Service) Update(ctx context.Context, c *domain.Customer) (ok bool, err error) {
	if c == nil {
		return false, domain.ErrNilEntity
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		found, err := repo.Exists(ctx, c.ID)
		if err != nil {
			return err
		}
		if !found {
			s.logger.Warn("customer not found", "customerID", c.ID)
			return nil
		}
		if err := repo.Update(ctx, c); err != nil {
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

// Delete removes the customer and, in the same unit of work, every account it
// owns together with the transactions posted against those accounts. It
// returns false, without error, when no customer with that id exists.
func (s *Service) Delete(ctx context.Context, id int64) (ok bool, err error) {
	if id <= 0 {
		return false, domain.ErrInvalidID
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		found, err := customers.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			s.logger.Warn("customer not found", "customerID", id)
			return nil
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		ledger, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		owned, err := accounts.ListByCustomer(ctx, id)
		if err != nil {
			return err
		}
		for _, a := range owned {
			if err := ledger.DeleteByAccount(ctx, a.ID); err != nil {
				return err
			}
		}
		if err := accounts.DeleteByCustomer(ctx, id); err != nil {
			return err
		}
		if err := customers.Delete(ctx, id); err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info("customer deleted", "customerID", id)
	}
	return ok, nil
}

// Exists reports whether a customer with the given id exists, without
// materializing the full record.
func (s *Service) Exists(ctx context.Context, id int64) (found bool, err error) {
	if id <= 0 {
		return false, domain.ErrInvalidID
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		found, err = repo.Exists(ctx, id)
		return err
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
