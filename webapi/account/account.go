// Package account exposes the account-opening workflow and account reads
// over HTTP.
package account

import (
	accountsvc "github.com/blueharvest/bank/pkg/service/account"
	transactionsvc "github.com/blueharvest/bank/pkg/service/transaction"
	"github.com/blueharvest/bank/pkg/validation"
	"github.com/blueharvest/bank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the account endpoints:
//
//   - GET    /accounts                  : list all accounts
//   - GET    /accounts/:id              : fetch one account
//   - POST   /accounts                  : open an account (workflow)
//   - PUT    /accounts/:id              : update an account
//   - DELETE /accounts/:id              : delete an account and its transactions
//   - GET    /accounts/:id/transactions : list the account's transactions
func Routes(app *fiber.App, accountSvc *accountsvc.Service, transactionSvc *transactionsvc.Service) {
	app.Get("/accounts", List(accountSvc))
	app.Get("/accounts/:id", Get(accountSvc))
	app.Post("/accounts", Open(accountSvc))
	app.Put("/accounts/:id", Update(accountSvc))
	app.Delete("/accounts/:id", Delete(accountSvc))
	app.Get("/accounts/:id/transactions", ListTransactions(transactionSvc))
}

// List returns a handler that lists all accounts.
func List(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := svc.List(c.Context())
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to list accounts", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts retrieved", accounts)
	}
}

// Get returns a handler that fetches one account by id.
func Get(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		account, err := svc.Get(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to get account %d: %v", id, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to get account", err.Error())
		}
		if account == nil {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Account not found", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account retrieved", account)
	}
}

// Open returns a handler that runs the account-opening workflow: it validates
// the request, then creates the account and its opening transaction in one
// atomic unit.
func Open(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OpenAccountRequest](c)
		if err != nil {
			return err
		}
		candidate := input.toDomain()
		if violations := validation.ValidateAccount(candidate); len(violations) > 0 {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", violations)
		}
		account, err := svc.Create(c.Context(), candidate)
		if err != nil {
			log.Errorf("Failed to open account: %v", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to open account", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account opened", account)
	}
}

// Update returns a handler that validates and updates an account.
func Update(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[OpenAccountRequest](c)
		if err != nil {
			return err
		}
		candidate := input.toDomain()
		candidate.ID = id
		if violations := validation.ValidateAccount(candidate); len(violations) > 0 {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", violations)
		}
		ok, err := svc.Update(c.Context(), candidate)
		if err != nil {
			log.Errorf("Failed to update account %d: %v", id, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to update account", err.Error())
		}
		if !ok {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Account or customer not found", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", candidate)
	}
}

// Delete returns a handler that deletes an account together with the
// transactions posted against it.
func Delete(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		ok, err := svc.Delete(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to delete account %d: %v", id, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to delete account", err.Error())
		}
		if !ok {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Account not found", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account deleted", nil)
	}
}

// ListTransactions returns a handler that lists the account's transactions.
func ListTransactions(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		transactions, err := svc.ListForAccount(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to list transactions for account %d: %v", id, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to list transactions", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions retrieved", transactions)
	}
}
