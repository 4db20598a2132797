package httpserver_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/mem-bank/cmd/httpserver"
	"github.com/go-petr/mem-bank/internal/customerrepo"
	"github.com/go-petr/mem-bank/internal/domain"
	"github.com/go-petr/mem-bank/internal/memdb"
	"github.com/go-petr/mem-bank/pkg/configpkg"
	"github.com/go-petr/mem-bank/pkg/randompkg"
	"github.com/go-petr/mem-bank/pkg/web"
)

func setupServer(t *testing.T) *httpserver.Server {
	t.Helper()

	config := configpkg.Config{
		ServerAddress:      "127.0.0.1:0",
		Environement:       configpkg.EnvProduction,
		CORSAllowedOrigins: []string{"http://localhost:8000"},
	}

	server, err := httpserver.New(memdb.New(), customerrepo.DefaultCustomers, zerolog.Nop(), config)
	if err != nil {
		t.Fatalf("httpserver.New() returned error: %v", err)
	}

	return server
}

func doRequest(t *testing.T, server http.Handler, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Encoding request body error: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(recorder.Body).Decode(&v); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return v
}

func createAccount(t *testing.T, server http.Handler, customerID int64, deposit float64) domain.AccountInfo {
	t.Helper()

	recorder := doRequest(t, server, http.MethodPost, "/accounts/", map[string]any{
		"customer_id":     customerID,
		"initial_deposit": deposit,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	return decode[domain.AccountInfo](t, recorder)
}

func transfer(server http.Handler, from, to string, amount float64) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(map[string]any{
		"from_account_id": from,
		"to_account_id":   to,
		"amount":          amount,
	})

	req := httptest.NewRequest(http.MethodPost, "/transfers/", &buf)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func balanceOf(t *testing.T, server http.Handler, accountID string) decimal.Decimal {
	t.Helper()

	recorder := doRequest(t, server, http.MethodGet, "/accounts/"+accountID+"/balance", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	b := decode[domain.Balance](t, recorder)
	require.Equal(t, accountID, b.AccountID)

	return b.Balance
}

func requireDetail(t *testing.T, recorder *httptest.ResponseRecorder, wantStatus int, wantDetail string) {
	t.Helper()

	require.Equal(t, wantStatus, recorder.Code)

	res := decode[web.ErrorResponse](t, recorder)
	require.Equal(t, wantDetail, res.Detail)
}

func TestCreateAccountAPI(t *testing.T) {
	server := setupServer(t)

	t.Run("OK", func(t *testing.T) {
		recorder := doRequest(t, server, http.MethodPost, "/accounts/", map[string]any{
			"customer_id":     1,
			"initial_deposit": 100.0,
		})
		require.Equal(t, http.StatusOK, recorder.Code)
		require.JSONEq(t, `{"account_id":"customer_1_account_1","customer_id":1,"balance":100}`, recorder.Body.String())
	})

	t.Run("SequentialIDs", func(t *testing.T) {
		second := createAccount(t, server, 1, 200)
		require.Equal(t, "customer_1_account_2", second.AccountID)

		other := createAccount(t, server, 2, 0)
		require.Equal(t, "customer_2_account_1", other.AccountID)
	})

	t.Run("CustomerNotFound", func(t *testing.T) {
		recorder := doRequest(t, server, http.MethodPost, "/accounts/", map[string]any{
			"customer_id":     5,
			"initial_deposit": 100.0,
		})
		requireDetail(t, recorder, http.StatusBadRequest, "Customer not found")
	})

	t.Run("NegativeDeposit", func(t *testing.T) {
		recorder := doRequest(t, server, http.MethodPost, "/accounts/", map[string]any{
			"customer_id":     1,
			"initial_deposit": -50.0,
		})
		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		require.Contains(t, decode[web.ErrorResponse](t, recorder).Detail, "initial_deposit")
	})

	t.Run("HugeDeposit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/accounts/",
			strings.NewReader(`{"customer_id": 1, "initial_deposit": 1e20000000}`))
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		require.Contains(t, decode[web.ErrorResponse](t, recorder).Detail, "initial_deposit")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		recorder := doRequest(t, server, http.MethodPost, "/accounts/", "not an object")
		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("RejectedRequestsCreateNothing", func(t *testing.T) {
		recorder := doRequest(t, server, http.MethodGet, "/accounts/", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		require.Len(t, decode[[]domain.AccountInfo](t, recorder), 3)
	})
}

func TestListAccountsAPI(t *testing.T) {
	server := setupServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/accounts/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `[]`, recorder.Body.String())

	a := createAccount(t, server, 3, 10)
	b := createAccount(t, server, 1, 20)
	c := createAccount(t, server, 3, 30)

	recorder = doRequest(t, server, http.MethodGet, "/accounts/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	got := decode[[]domain.AccountInfo](t, recorder)
	require.Len(t, got, 3)

	for i, want := range []domain.AccountInfo{a, b, c} {
		require.Equal(t, want.AccountID, got[i].AccountID)
		require.Equal(t, want.CustomerID, got[i].CustomerID)
		require.True(t, want.Balance.Equal(got[i].Balance))
	}

	// Without the trailing slash gin redirects to the registered route.
	recorder = doRequest(t, server, http.MethodGet, "/accounts", nil)
	require.Equal(t, http.StatusMovedPermanently, recorder.Code)
}

func TestTransferAPI(t *testing.T) {
	server := setupServer(t)

	account1 := createAccount(t, server, 1, 200)
	account2 := createAccount(t, server, 2, 50)

	recorder := transfer(server, account1.AccountID, account2.AccountID, 100)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	got := decode[domain.Transfer](t, recorder)
	require.Equal(t, account1.AccountID, got.FromAccountID)
	require.Equal(t, account2.AccountID, got.ToAccountID)
	require.True(t, got.Amount.Equal(decimal.NewFromInt(100)))
	require.WithinDuration(t, time.Now(), got.Timestamp, 5*time.Second)

	require.True(t, balanceOf(t, server, account1.AccountID).Equal(decimal.NewFromInt(100)))
	require.True(t, balanceOf(t, server, account2.AccountID).Equal(decimal.NewFromInt(150)))

	var logLen int
	require.NoError(t, server.DB.View(func(tx *memdb.Tx) error {
		logLen = tx.Transfers.Len()
		return nil
	}))
	require.Equal(t, 1, logLen)

	testCases := []struct {
		name       string
		from       string
		to         string
		amount     float64
		wantStatus int
		wantDetail string
	}{
		{
			name:       "InsufficientFunds",
			from:       account1.AccountID,
			to:         account2.AccountID,
			amount:     100.01,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Insufficient funds",
		},
		{
			name:       "ZeroAmount",
			from:       account1.AccountID,
			to:         account2.AccountID,
			amount:     0,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Transfer amount must be positive",
		},
		{
			name:       "NegativeAmount",
			from:       account1.AccountID,
			to:         account2.AccountID,
			amount:     -10,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Transfer amount must be positive",
		},
		{
			name:       "UnknownTarget",
			from:       account1.AccountID,
			to:         "customer_999_account_1",
			amount:     50,
			wantStatus: http.StatusNotFound,
			wantDetail: "Account not found",
		},
		{
			name:       "UnknownSourceCheckedBeforeAmount",
			from:       "customer_999_account_1",
			to:         account2.AccountID,
			amount:     -1,
			wantStatus: http.StatusNotFound,
			wantDetail: "Account not found",
		},
		{
			name:       "SameAccount",
			from:       account1.AccountID,
			to:         account1.AccountID,
			amount:     1,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Cannot transfer to the same account",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := transfer(server, tc.from, tc.to, tc.amount)
			requireDetail(t, recorder, tc.wantStatus, tc.wantDetail)

			require.True(t, balanceOf(t, server, account1.AccountID).Equal(decimal.NewFromInt(100)))
			require.True(t, balanceOf(t, server, account2.AccountID).Equal(decimal.NewFromInt(150)))
		})
	}

	t.Run("MissingFields", func(t *testing.T) {
		recorder := doRequest(t, server, http.MethodPost, "/transfers/", map[string]any{
			"from_account_id": account1.AccountID,
		})
		require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
}

func TestTransferHistoryAPI(t *testing.T) {
	server := setupServer(t)

	account1 := createAccount(t, server, 1, 200)
	account2 := createAccount(t, server, 2, 50)
	account3 := createAccount(t, server, 3, 0)

	require.Equal(t, http.StatusOK, transfer(server, account1.AccountID, account2.AccountID, 100).Code)
	require.Equal(t, http.StatusOK, transfer(server, account2.AccountID, account3.AccountID, 25.5).Code)

	recorder := doRequest(t, server, http.MethodGet, "/accounts/"+account1.AccountID+"/transfers", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	history := decode[[]domain.Transfer](t, recorder)
	require.Len(t, history, 1)
	require.True(t, history[0].Amount.Equal(decimal.NewFromInt(100)))

	recorder = doRequest(t, server, http.MethodGet, "/accounts/"+account2.AccountID+"/transfers", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	history = decode[[]domain.Transfer](t, recorder)
	require.Len(t, history, 2)
	require.Equal(t, account1.AccountID, history[0].FromAccountID)
	require.Equal(t, account3.AccountID, history[1].ToAccountID)
	require.True(t, history[1].Amount.Equal(decimal.RequireFromString("25.5")))

	account4 := createAccount(t, server, 4, 100)

	recorder = doRequest(t, server, http.MethodGet, "/accounts/"+account4.AccountID+"/transfers", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `[]`, recorder.Body.String())
}

func TestUnknownAccountAPI(t *testing.T) {
	server := setupServer(t)

	unknownID := "account_" + randompkg.String(8)

	for _, url := range []string{
		"/accounts/" + unknownID + "/balance",
		"/accounts/" + unknownID + "/transfers",
	} {
		recorder := doRequest(t, server, http.MethodGet, url, nil)
		requireDetail(t, recorder, http.StatusNotFound, "Account not found")
	}

	recorder := doRequest(t, server, http.MethodGet, "/nowhere", nil)
	requireDetail(t, recorder, http.StatusNotFound, "Not Found")

	recorder = doRequest(t, server, http.MethodDelete, "/transfers/", nil)
	requireDetail(t, recorder, http.StatusMethodNotAllowed, "Method Not Allowed")
}

func TestConcurrentTransfersAPI(t *testing.T) {
	server := setupServer(t)

	account1 := createAccount(t, server, 1, 100)
	account2 := createAccount(t, server, 2, 100)

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			transfer(server, account1.AccountID, account2.AccountID, 9)
		}()

		go func() {
			defer wg.Done()
			transfer(server, account2.AccountID, account1.AccountID, 4)
		}()
	}

	wg.Wait()

	balance1 := balanceOf(t, server, account1.AccountID)
	balance2 := balanceOf(t, server, account2.AccountID)

	require.False(t, balance1.IsNegative())
	require.False(t, balance2.IsNegative())
	require.True(t, balance1.Add(balance2).Equal(decimal.NewFromInt(200)), fmt.Sprintf("%s + %s", balance1, balance2))
}
