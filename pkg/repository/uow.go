package repository

import (
	"context"
	"reflect"
)

// UnitOfWork is the transactional boundary for multi-repository writes.
//
// GetRepository is part of UnitOfWork so that every repository handed out
// inside Do is bound to the same store session: the account-opening workflow
// depends on its account insert and opening-transaction insert committing or
// rolling back together, and handing out repositories bound to another
// session would silently break that.
type UnitOfWork interface {
	// Do executes fn within one atomic transaction boundary. If fn returns an
	// error the transaction is rolled back and the error is returned.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction or session.
	GetRepository(repoType reflect.Type) (any, error)

	// Typed convenience accessors over GetRepository.
	CustomerRepository() (CustomerRepository, error)
	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
}
