package account

import "github.com/blueharvest/bank/pkg/domain"

// OpenAccountRequest is the body for opening an account. Credit is a pointer
// so an absent value is distinguishable from zero; both are rejected by the
// validation layer with the fixed initial-credit message.
type OpenAccountRequest struct {
	CustomerID int64    `json:"customer_id"`
	Credit     *float64 `json:"credit"`
}

func (r *OpenAccountRequest) toDomain() *domain.Account {
	a := &domain.Account{CustomerID: r.CustomerID}
	if r.Credit != nil {
		a.Credit = *r.Credit
	}
	return a
}
