package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/blueharvest/bank/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestCustomerRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := customerRepository{db: db}

	customer := &domain.Customer{Name: "John", Surname: "Smith", Address: "Amsterdam", Postcode: "1234AB"}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers" (.+) VALUES (.+) RETURNING "id"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), customer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), customer.ID)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	err = repo.Create(context.Background(), customer)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := customerRepository{db: db}

	rows := sqlmock.NewRows([]string{"id", "name", "surname", "address", "postcode"}).
		AddRow(int64(1), "John", "Smith", "Amsterdam", "1234AB")
	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1(.+)LIMIT \$2`).
		WithArgs(int64(1), 1).
		WillReturnRows(rows)

	customer, err := repo.Get(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "John", customer.Name)
	assert.Equal(t, "1234AB", customer.Postcode)

	mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1(.+)LIMIT \$2`).
		WithArgs(int64(9), 1).
		WillReturnError(gorm.ErrRecordNotFound)

	missing, err := repo.Get(context.Background(), 9)
	require.NoError(t, err, "a read miss is not an error")
	assert.Nil(t, missing)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := customerRepository{db: db}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	found, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, found)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	found, err = repo.Exists(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_ListByCustomer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "credit", "establish_date", "customer_id"}).
		AddRow(int64(1), 1000.50, now, int64(1)).
		AddRow(int64(2), 20.0, now, int64(1))
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE customer_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	accounts, err := repo.ListByCustomer(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.InDelta(t, 1000.50, accounts[0].Credit, 0.001)
	assert.Equal(t, int64(1), accounts[0].CustomerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ListByAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := transactionRepository{db: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "amount", "transaction_time", "account_id"}).
		AddRow(int64(1), 1000.50, now, int64(1))
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE account_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	transactions, err := repo.ListByAccount(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.InDelta(t, 1000.50, transactions[0].Amount, 0.001)
	assert.Equal(t, int64(1), transactions[0].AccountID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := transactionRepository{db: db}

	tx := &domain.Transaction{Amount: 1000.50, TransactionTime: time.Now().UTC(), AccountID: 1}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions" (.+) VALUES (.+) RETURNING "id"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), tx.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
