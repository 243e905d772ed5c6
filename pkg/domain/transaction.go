package domain

import "time"

// Transaction is an immutable posting against one account. The amount is
// signed: positive for credits, negative for debits. TransactionTime is
// stamped at creation; no update or delete is exposed for transactions.
type Transaction struct {
	ID              int64     `json:"id"`
	Amount          float64   `json:"amount"`
	TransactionTime time.Time `json:"transaction_time"`
	AccountID       int64     `json:"account_id"`
}
