package customer_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/blueharvest/bank/pkg/domain"
	"github.com/blueharvest/bank/pkg/validation"
	"github.com/blueharvest/bank/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type problemBody struct {
	Title  string                 `json:"title"`
	Status int                    `json:"status"`
	Errors []validation.Violation `json:"errors"`
}

func seedCustomer(t *testing.T, env *testutils.Env) *domain.Customer {
	t.Helper()
	c, err := env.Customers.Create(context.Background(), &domain.Customer{
		Name: "John", Surname: "Smith", Address: "Amsterdam", Postcode: "1234AB",
	})
	require.NoError(t, err)
	return c
}

func TestCreateCustomerVariants(t *testing.T) {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{
			desc:       "success",
			body:       `{"name":"John","surname":"Smith","address":"Amsterdam","postcode":"1234AB"}`,
			wantStatus: fiber.StatusCreated,
		},
		{
			desc:       "blank postcode",
			body:       `{"name":"John","surname":"Smith","address":"Amsterdam","postcode":"  "}`,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			desc:       "malformed body",
			body:       `{"name":123}`,
			wantStatus: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			env := testutils.NewEnv(t)
			resp := env.MakeRequest(t, "POST", "/customers", tc.body)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestCreateCustomer_BlankPostcodeViolation(t *testing.T) {
	env := testutils.NewEnv(t)
	resp := env.MakeRequest(t, "POST", "/customers",
		`{"name":"John","surname":"Smith","address":"Amsterdam","postcode":""}`)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var pd problemBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	require.Len(t, pd.Errors, 1)
	assert.Equal(t, "postcode", pd.Errors[0].Field)
	assert.Equal(t, "Blank or invalid postcode", pd.Errors[0].Message)
	assert.Equal(t, 0, env.Store.CustomerCount())
}

func TestGetCustomerVariants(t *testing.T) {
	env := testutils.NewEnv(t)
	seeded := seedCustomer(t, env)

	testCases := []struct {
		desc       string
		target     string
		wantStatus int
	}{
		{desc: "found", target: "/customers/1", wantStatus: fiber.StatusOK},
		{desc: "missing", target: "/customers/99", wantStatus: fiber.StatusNotFound},
		{desc: "non-positive id", target: "/customers/0", wantStatus: fiber.StatusBadRequest},
		{desc: "non-numeric id", target: "/customers/abc", wantStatus: fiber.StatusBadRequest},
	}
	require.Equal(t, int64(1), seeded.ID)

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			resp := env.MakeRequest(t, "GET", tc.target, "")
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetCustomer_InvalidIDProblemBody(t *testing.T) {
	env := testutils.NewEnv(t)
	resp := env.MakeRequest(t, "GET", "/customers/abc", "")
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var pd problemBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Bad Request", pd.Title)
	assert.Equal(t, fiber.StatusBadRequest, pd.Status)
}

func TestUpdateCustomer(t *testing.T) {
	env := testutils.NewEnv(t)
	seedCustomer(t, env)

	resp := env.MakeRequest(t, "PUT", "/customers/1",
		`{"name":"John","surname":"Smith","address":"Rotterdam","postcode":"1234AB"}`)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := env.Customers.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Rotterdam", got.Address)

	missing := env.MakeRequest(t, "PUT", "/customers/42",
		`{"name":"John","surname":"Smith","address":"Rotterdam","postcode":"1234AB"}`)
	defer missing.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusNotFound, missing.StatusCode)
}

func TestDeleteCustomer(t *testing.T) {
	env := testutils.NewEnv(t)
	seedCustomer(t, env)

	resp := env.MakeRequest(t, "DELETE", "/customers/1", "")
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, env.Store.CustomerCount())

	again := env.MakeRequest(t, "DELETE", "/customers/1", "")
	defer again.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusNotFound, again.StatusCode)
}

func TestListCustomerAccounts(t *testing.T) {
	env := testutils.NewEnv(t)
	owner := seedCustomer(t, env)
	_, err := env.Accounts.Create(context.Background(), &domain.Account{Credit: 100, CustomerID: owner.ID})
	require.NoError(t, err)

	resp := env.MakeRequest(t, "GET", "/customers/1/accounts", "")
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []domain.Account `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.InDelta(t, 100, body.Data[0].Credit, 0.001)
}
