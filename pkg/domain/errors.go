package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the service layer. Callers match with errors.Is.
var (
	// ErrInvalidID is returned when a caller passes a non-positive identifier.
	ErrInvalidID = errors.New("id must be a positive number")
	// ErrNilEntity is returned when a required entity argument is absent.
	ErrNilEntity = errors.New("entity cannot be nil")
	// ErrOperationFailed means a multi-step workflow could not complete
	// atomically. No partial state is left behind when it is returned.
	ErrOperationFailed = errors.New("operation failed")

	// ErrCustomerNotFound is returned by the account-opening workflow when the
	// referenced customer does not exist at creation time.
	ErrCustomerNotFound = fmt.Errorf("%w: customer not found", ErrOperationFailed)
	// ErrAccountCreationFailed is returned when the account insert fails.
	ErrAccountCreationFailed = fmt.Errorf("%w: account creation failed", ErrOperationFailed)
	// ErrTransactionCreationFailed is returned when the opening-transaction
	// insert fails; the paired account insert is rolled back with it.
	ErrTransactionCreationFailed = fmt.Errorf("%w: transaction creation failed", ErrOperationFailed)
)
