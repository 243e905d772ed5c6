// Package transaction exposes the transaction ledger over HTTP.
package transaction

import (
	transactionsvc "github.com/blueharvest/bank/pkg/service/transaction"
	"github.com/blueharvest/bank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the transaction endpoints:
//
//   - GET  /transactions     : list all transactions
//   - GET  /transactions/:id : fetch one transaction
//   - POST /transactions     : post a transaction against an account
func Routes(app *fiber.App, transactionSvc *transactionsvc.Service) {
	app.Get("/transactions", List(transactionSvc))
	app.Get("/transactions/:id", Get(transactionSvc))
	app.Post("/transactions", Create(transactionSvc))
}

// List returns a handler that lists all transactions.
func List(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transactions, err := svc.List(c.Context())
		if err != nil {
			log.Errorf("Failed to list transactions: %v", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to list transactions", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions retrieved", transactions)
	}
}

// Get returns a handler that fetches one transaction by id.
func Get(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return err
		}
		transaction, err := svc.Get(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to get transaction %d: %v", id, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to get transaction", err.Error())
		}
		if transaction == nil {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Transaction not found", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction retrieved", transaction)
	}
}

// Create returns a handler that posts a transaction.
func Create(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PostTransactionRequest](c)
		if err != nil {
			return err
		}
		transaction, err := svc.Create(c.Context(), input.toDomain())
		if err != nil {
			log.Errorf("Failed to post transaction: %v", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to post transaction", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction posted", transaction)
	}
}
