package customer

import "github.com/blueharvest/bank/pkg/domain"

// CustomerRequest is the create/update request body. Blank-field rules are
// enforced by the validation layer so each field carries its fixed message.
type CustomerRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
}

func (r *CustomerRequest) toDomain() *domain.Customer {
	return &domain.Customer{
		Name:     r.Name,
		Surname:  r.Surname,
		Address:  r.Address,
		Postcode: r.Postcode,
	}
}
