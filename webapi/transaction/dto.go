package transaction

import "github.com/blueharvest/bank/pkg/domain"

// PostTransactionRequest is the body for posting a transaction against an
// existing account. The amount is signed; the ledger records it as given.
type PostTransactionRequest struct {
	AccountID int64   `json:"account_id" validate:"required,gt=0"`
	Amount    float64 `json:"amount" validate:"required"`
}

func (r *PostTransactionRequest) toDomain() *domain.Transaction {
	return &domain.Transaction{
		AccountID: r.AccountID,
		Amount:    r.Amount,
	}
}
