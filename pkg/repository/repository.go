// Package repository defines the data-access contracts consumed by the
// service layer. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/blueharvest/bank/pkg/domain"
)

// Crud is the capability shared by entity repositories, parameterized over
// the entity type. Get returns (nil, nil) when no row matches; absence is not
// an error at this layer.
type Crud[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]*T, error)
	// Create persists the entity and populates its store-assigned ID.
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// CustomerRepository provides data access for customer records.
type CustomerRepository interface {
	Crud[domain.Customer]
}

// AccountRepository provides data access for account records.
type AccountRepository interface {
	Crud[domain.Account]
	// ListByCustomer returns the accounts owned by the given customer,
	// matched on customer id only.
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Account, error)
	// DeleteByCustomer removes all accounts owned by the given customer.
	// Used by the customer-delete cascade; always runs inside a unit of work.
	DeleteByCustomer(ctx context.Context, customerID int64) error
}

// TransactionRepository provides data access for transaction records. The
// ledger is append-only: no update and no single-row delete are exposed.
// DeleteByAccount exists solely for the account-delete cascade.
type TransactionRepository interface {
	Get(ctx context.Context, id int64) (*domain.Transaction, error)
	List(ctx context.Context) ([]*domain.Transaction, error)
	Create(ctx context.Context, transaction *domain.Transaction) error
	// ListByAccount returns the transactions posted against the given
	// account, matched on account id only.
	ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error)
	DeleteByAccount(ctx context.Context, accountID int64) error
}
