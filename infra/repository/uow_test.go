package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/blueharvest/bank/pkg/domain"
	"github.com/blueharvest/bank/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUoW_Do_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(u repository.UnitOfWork) error {
		customers, err := u.CustomerRepository()
		if err != nil {
			return err
		}
		return customers.Create(context.Background(), &domain.Customer{
			Name: "John", Surname: "Smith", Address: "Amsterdam", Postcode: "1234AB",
		})
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_Do_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	// The account insert succeeds but the opening-transaction insert fails;
	// the whole unit rolls back, so the account never becomes visible.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(`INSERT INTO "transactions" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(u repository.UnitOfWork) error {
		accounts, err := u.AccountRepository()
		if err != nil {
			return err
		}
		acct := &domain.Account{Credit: 100, CustomerID: 1}
		if err := accounts.Create(context.Background(), acct); err != nil {
			return err
		}
		ledger, err := u.TransactionRepository()
		if err != nil {
			return err
		}
		return ledger.Create(context.Background(), &domain.Transaction{Amount: 100, AccountID: acct.ID})
	})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_GetRepository_Unsupported(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	_, err := uow.GetRepository(nil)
	assert.Error(t, err)
}
