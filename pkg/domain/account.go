package domain

import "time"

// Account is a financial account owned by exactly one customer. Accounts are
// created only through the account-opening workflow, which pairs every new
// account with its opening transaction. EstablishDate is computed once at
// creation and never caller-supplied.
type Account struct {
	ID            int64     `json:"id"`
	Credit        float64   `json:"credit" validate:"gt=0"`
	EstablishDate time.Time `json:"establish_date"`
	CustomerID    int64     `json:"customer_id" validate:"required"`
}
