// Package domain holds the bank's core entities and the errors its services
// return. Entities carry numeric, store-assigned identifiers; a zero ID means
// the entity has not been persisted yet.
package domain

// Customer is a bank client record. A customer owns zero or more accounts,
// reached through Account.CustomerID.
type Customer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"notblank"`
	Surname  string `json:"surname" validate:"notblank"`
	Address  string `json:"address" validate:"notblank"`
	Postcode string `json:"postcode" validate:"notblank"`
}
