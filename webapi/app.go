// Package webapi assembles the HTTP surface of the bank service.
package webapi

import (
	"errors"
	"log/slog"

	"github.com/blueharvest/bank/config"
	accountsvc "github.com/blueharvest/bank/pkg/service/account"
	customersvc "github.com/blueharvest/bank/pkg/service/customer"
	transactionsvc "github.com/blueharvest/bank/pkg/service/transaction"
	"github.com/blueharvest/bank/webapi/account"
	"github.com/blueharvest/bank/webapi/common"
	"github.com/blueharvest/bank/webapi/customer"
	"github.com/blueharvest/bank/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// Deps carries the services and configuration the app serves with.
type Deps struct {
	Customers    *customersvc.Service
	Accounts     *accountsvc.Service
	Transactions *transactionsvc.Service
	Cfg          *config.AppConfig
	Logger       *slog.Logger
}

// New builds the Fiber app: recovery, request-id and rate-limit middleware,
// then the customer, account and transaction routes.
func New(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "bank",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, utils.StatusMessage(status), err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Cfg.RateLimit.MaxRequests,
		Expiration: deps.Cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bank service is up")
	})

	customer.Routes(app, deps.Customers, deps.Accounts)
	account.Routes(app, deps.Accounts, deps.Transactions)
	transaction.Routes(app, deps.Transactions)

	return app
}
