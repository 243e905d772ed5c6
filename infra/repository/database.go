package repository

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDBConnection opens the postgres database at the given URL and migrates
// the customer, account and transaction tables. Default per-statement
// transactions are skipped; writes that need atomicity go through the UoW.
func NewDBConnection(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("database URL is not set")
	}
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Customer{}, &Account{}, &Transaction{}); err != nil {
		return nil, err
	}
	return db, nil
}
