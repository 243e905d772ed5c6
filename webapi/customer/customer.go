// Package customer exposes the customer directory over HTTP.
package customer

import (
	accountsvc "github.com/blueharvest/bank/pkg/service/account"
	customersvc "github.com/blueharvest/bank/pkg/service/customer"
	"github.com/blueharvest/bank/pkg/validation"
	"github.com/blueharvest/bank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the customer endpoints:
//
//   - GET    /customers              : list all customers
//   - GET    /customers/:id          : fetch one customer
//   - POST   /customers              : create a customer
//   - PUT    /customers/:id          : update a customer
//   - DELETE /customers/:id          : delete a customer and its accounts
//   - GET    /customers/:id/accounts : list the customer's accounts
func Routes(app *fiber.App, customerSvc *customersvc.Service, accountSvc *accountsvc.Service) {
	app.Get("/customers", List(customerSvc))
	app.Get("/customers/:id", Get(customerSvc))
	app.Post("/customers", Create(customerSvc))
	app.Put("/customers/:id", Update(customerSvc))
	app.Delete("/customers/:id", Delete(customerSvc))
	app.Get("/customers/:id/accounts", ListAccounts(accountSvc))
}

// List returns a handler that lists all customers.
func List(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customers, err := svc.List(c.Context())
		if err != nil {
			log.Errorf("Failed to list customers: %v", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to list customers", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customers retrieved", customers)
	}
}

// Get returns a handler that fetches one customer by id.
func Get(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		customer, err := svc.Get(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to get customer %d: %v", id, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to get customer", err.Error())
		}
		if customer == nil {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Customer not found", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer retrieved", customer)
	}
}

// Create returns a handler that validates and creates a customer.
func Create(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CustomerRequest](c)
		if err != nil {
			return err
		}
		candidate := input.toDomain()
		if violations := validation.ValidateCustomer(candidate); len(violations) > 0 {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", violations)
		}
		customer, err := svc.Create(c.Context(), candidate)
		if err != nil {
			log.Errorf("Failed to create customer: %v", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to create customer", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Customer created", customer)
	}
}

// Update returns a handler that validates and updates a customer.
func Update(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[CustomerRequest](c)
		if err != nil {
			return err
		}
		candidate := input.toDomain()
		candidate.ID = id
		if violations := validation.ValidateCustomer(candidate); len(violations) > 0 {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", violations)
		}
		ok, err := svc.Update(c.Context(), candidate)
		if err != nil {
			log.Errorf("Failed to update customer %d: %v", id, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to update customer", err.Error())
		}
		if !ok {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Customer not found", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer updated", candidate)
	}
}

// Delete returns a handler that deletes a customer and, with it, every
// account the customer owns and their transactions.
func Delete(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		ok, err := svc.Delete(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to delete customer %d: %v", id, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to delete customer", err.Error())
		}
		if !ok {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Customer not found", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer deleted", nil)
	}
}

// ListAccounts returns a handler that lists the customer's accounts.
func ListAccounts(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		accounts, err := svc.ListForCustomer(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to list accounts for customer %d: %v", id, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to list accounts", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts retrieved", accounts)
	}
}
