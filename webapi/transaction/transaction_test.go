package transaction_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/blueharvest/bank/pkg/domain"
	"github.com/blueharvest/bank/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostTransactionVariants(t *testing.T) {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "success",
			body:       `{"account_id":1,"amount":-25.50}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "missing account reference",
			body:       `{"amount":10}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "malformed body",
			body:       `{"account_id":"x"}`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			env := testutils.NewEnv(t)
			resp := env.MakeRequest(t, "POST", "/transactions", tc.body)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetTransactionVariants(t *testing.T) {
	env := testutils.NewEnv(t)
	_, err := env.Transactions.Create(context.Background(), &domain.Transaction{Amount: 5, AccountID: 1})
	require.NoError(t, err)

	testCases := []struct {
		desc       string
		target     string
		wantStatus int
	}{
		{desc: "found", target: "/transactions/1", wantStatus: fiber.StatusOK},
		{desc: "missing", target: "/transactions/50", wantStatus: fiber.StatusNotFound},
		{desc: "non-positive id", target: "/transactions/0", wantStatus: fiber.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			resp := env.MakeRequest(t, "GET", tc.target, "")
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestListTransactions(t *testing.T) {
	env := testutils.NewEnv(t)
	ctx := context.Background()
	_, err := env.Transactions.Create(ctx, &domain.Transaction{Amount: 5, AccountID: 1})
	require.NoError(t, err)
	_, err = env.Transactions.Create(ctx, &domain.Transaction{Amount: 7, AccountID: 2})
	require.NoError(t, err)

	resp := env.MakeRequest(t, "GET", "/transactions", "")
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []domain.Transaction `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 2)
}
