// Package testutils builds a fully wired test app over the in-memory
// fixtures for handler tests.
package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blueharvest/bank/config"
	"github.com/blueharvest/bank/internal/fixtures"
	accountsvc "github.com/blueharvest/bank/pkg/service/account"
	customersvc "github.com/blueharvest/bank/pkg/service/customer"
	transactionsvc "github.com/blueharvest/bank/pkg/service/transaction"
	"github.com/blueharvest/bank/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// Env bundles the app under test with its backing store and services, so
// tests can seed state directly through the service layer.
type Env struct {
	App          *fiber.App
	Store        *fixtures.Store
	Customers    *customersvc.Service
	Accounts     *accountsvc.Service
	Transactions *transactionsvc.Service
}

// NewEnv wires a Fiber app over an empty in-memory store with a rate limit
// high enough to stay out of the way.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	store := fixtures.NewStore()
	uow := fixtures.NewUoW(store)
	logger := slog.Default()
	customers := customersvc.NewService(uow, logger)
	accounts := accountsvc.NewService(uow, logger)
	transactions := transactionsvc.NewService(uow, logger)
	app := webapi.New(webapi.Deps{
		Customers:    customers,
		Accounts:     accounts,
		Transactions: transactions,
		Cfg: &config.AppConfig{
			RateLimit: config.RateLimitConfig{MaxRequests: 10000, Window: time.Minute},
		},
		Logger: logger,
	})
	return &Env{
		App:          app,
		Store:        store,
		Customers:    customers,
		Accounts:     accounts,
		Transactions: transactions,
	}
}

// MakeRequest performs an HTTP request against the test app and returns the
// response.
func (e *Env) MakeRequest(t *testing.T, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}
