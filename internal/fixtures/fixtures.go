// Package fixtures provides in-memory implementations of the repository
// contracts for tests: a map-backed store, fake repositories over it, and a
// unit of work that snapshots the store before each Do call and restores it
// when the call fails, mirroring the database rollback contract.
package fixtures

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/blueharvest/bank/pkg/domain"
	"github.com/blueharvest/bank/pkg/repository"
)

// Store is a map-backed entity store with auto-assigned numeric ids.
// FailAccountCreate and FailTransactionCreate, when set, make the matching
// insert fail with that error to simulate storage-level failures.
type Store struct {
	customers    map[int64]domain.Customer
	accounts     map[int64]domain.Account
	transactions map[int64]domain.Transaction

	nextCustomerID    int64
	nextAccountID     int64
	nextTransactionID int64

	FailAccountCreate     error
	FailTransactionCreate error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		customers:    make(map[int64]domain.Customer),
		accounts:     make(map[int64]domain.Account),
		transactions: make(map[int64]domain.Transaction),
	}
}

// CustomerCount returns the number of customer rows.
func (s *Store) CustomerCount() int { return len(s.customers) }

// AccountCount returns the number of account rows.
func (s *Store) AccountCount() int { return len(s.accounts) }

// TransactionCount returns the number of transaction rows.
func (s *Store) TransactionCount() int { return len(s.transactions) }

type snapshot struct {
	customers    map[int64]domain.Customer
	accounts     map[int64]domain.Account
	transactions map[int64]domain.Transaction

	nextCustomerID    int64
	nextAccountID     int64
	nextTransactionID int64
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		customers:         cloneMap(s.customers),
		accounts:          cloneMap(s.accounts),
		transactions:      cloneMap(s.transactions),
		nextCustomerID:    s.nextCustomerID,
		nextAccountID:     s.nextAccountID,
		nextTransactionID: s.nextTransactionID,
	}
}

func (s *Store) restore(snap snapshot) {
	s.customers = snap.customers
	s.accounts = snap.accounts
	s.transactions = snap.transactions
	s.nextCustomerID = snap.nextCustomerID
	s.nextAccountID = snap.nextAccountID
	s.nextTransactionID = snap.nextTransactionID
}

func cloneMap[V any](m map[int64]V) map[int64]V {
	out := make(map[int64]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// UoW is a repository.UnitOfWork over a Store. Do snapshots the store before
// running fn and restores the snapshot when fn fails, so tests observe the
// same all-or-nothing behavior the database transaction provides.
type UoW struct {
	store *Store
}

// NewUoW creates a unit of work over the given store.
func NewUoW(store *Store) *UoW {
	return &UoW{store: store}
}

// Do implements repository.UnitOfWork.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	snap := u.store.snapshot()
	if err := fn(u); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

// GetRepository implements repository.UnitOfWork.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	switch repoType {
	case reflect.TypeOf((*repository.CustomerRepository)(nil)).Elem():
		return &customerRepo{store: u.store}, nil
	case reflect.TypeOf((*repository.AccountRepository)(nil)).Elem():
		return &accountRepo{store: u.store}, nil
	case reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem():
		return &transactionRepo{store: u.store}, nil
	default:
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
}

// CustomerRepository implements repository.UnitOfWork.
func (u *UoW) CustomerRepository() (repository.CustomerRepository, error) {
	return &customerRepo{store: u.store}, nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return &accountRepo{store: u.store}, nil
}

// TransactionRepository implements repository.UnitOfWork.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	return &transactionRepo{store: u.store}, nil
}

type customerRepo struct {
	store *Store
}

func (r *customerRepo) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.store.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context) ([]*domain.Customer, error) {
	customers := make([]*domain.Customer, 0, len(r.store.customers))
	for _, id := range sortedIDs(r.store.customers) {
		c := r.store.customers[id]
		customers = append(customers, &c)
	}
	return customers, nil
}

func (r *customerRepo) Create(ctx context.Context, c *domain.Customer) error {
	r.store.nextCustomerID++
	c.ID = r.store.nextCustomerID
	r.store.customers[c.ID] = *c
	return nil
}

func (r *customerRepo) Update(ctx context.Context, c *domain.Customer) error {
	r.store.customers[c.ID] = *c
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id int64) error {
	delete(r.store.customers, id)
	return nil
}

func (r *customerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.store.customers[id]
	return ok, nil
}

type accountRepo struct {
	store *Store
}

func (r *accountRepo) Get(ctx context.Context, id int64) (*domain.Account, error) {
	a, ok := r.store.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *accountRepo) List(ctx context.Context) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0, len(r.store.accounts))
	for _, id := range sortedIDs(r.store.accounts) {
		a := r.store.accounts[id]
		accounts = append(accounts, &a)
	}
	return accounts, nil
}

func (r *accountRepo) Create(ctx context.Context, a *domain.Account) error {
	if r.store.FailAccountCreate != nil {
		return r.store.FailAccountCreate
	}
	r.store.nextAccountID++
	a.ID = r.store.nextAccountID
	r.store.accounts[a.ID] = *a
	return nil
}

func (r *accountRepo) Update(ctx context.Context, a *domain.Account) error {
	r.store.accounts[a.ID] = *a
	return nil
}

func (r *accountRepo) Delete(ctx context.Context, id int64) error {
	delete(r.store.accounts, id)
	return nil
}

func (r *accountRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := r.store.accounts[id]
	return ok, nil
}

func (r *accountRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Account, error) {
	var accounts []*domain.Account
	for _, id := range sortedIDs(r.store.accounts) {
		a := r.store.accounts[id]
		if a.CustomerID == customerID {
			accounts = append(accounts, &a)
		}
	}
	return accounts, nil
}

func (r *accountRepo) DeleteByCustomer(ctx context.Context, customerID int64) error {
	for id, a := range r.store.accounts {
		if a.CustomerID == customerID {
			delete(r.store.accounts, id)
		}
	}
	return nil
}

type transactionRepo struct {
	store *Store
}

func (r *transactionRepo) Get(ctx context.Context, id int64) (*domain.Transaction, error) {
	t, ok := r.store.transactions[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *transactionRepo) List(ctx context.Context) ([]*domain.Transaction, error) {
	transactions := make([]*domain.Transaction, 0, len(r.store.transactions))
	for _, id := range sortedIDs(r.store.transactions) {
		t := r.store.transactions[id]
		transactions = append(transactions, &t)
	}
	return transactions, nil
}

func (r *transactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	if r.store.FailTransactionCreate != nil {
		return r.store.FailTransactionCreate
	}
	r.store.nextTransactionID++
	t.ID = r.store.nextTransactionID
	r.store.transactions[t.ID] = *t
	return nil
}

func (r *transactionRepo) ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	for _, id := range sortedIDs(r.store.transactions) {
		t := r.store.transactions[id]
		if t.AccountID == accountID {
			transactions = append(transactions, &t)
		}
	}
	return transactions, nil
}

func (r *transactionRepo) DeleteByAccount(ctx context.Context, accountID int64) error {
	for id, t := range r.store.transactions {
		if t.AccountID == accountID {
			delete(r.store.transactions, id)
		}
	}
	return nil
}
