package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/routelabs/sweep-middleware/pkg/app/errors"
	"github.com/routelabs/sweep-middleware/pkg/deposit"
	"github.com/routelabs/sweep-middleware/pkg/sweeper"
)

type mockService struct {
	CreateDepositFunc func(ctx context.Context, userHex string) (*deposit.Deposit, error)
	ListDepositsFunc  func(ctx context.Context, query ListQuery) ([]*deposit.Deposit, error)
	RouteFunc         func(ctx context.Context, addressHex string) (*sweeper.Summary, error)
}

func (m *mockService) CreateDeposit(ctx context.Context, userHex string) (*deposit.Deposit, error) {
	if m.CreateDepositFunc != nil {
		return m.CreateDepositFunc(ctx, userHex)
	}
	return &deposit.Deposit{ID: 1}, nil
}

func (m *mockService) ListDeposits(ctx context.Context, query ListQuery) ([]*deposit.Deposit, error) {
	if m.ListDepositsFunc != nil {
		return m.ListDepositsFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockService) Route(ctx context.Context, addressHex string) (*sweeper.Summary, error) {
	if m.RouteFunc != nil {
		return m.RouteFunc(ctx, addressHex)
	}
	return &sweeper.Summary{}, nil
}

func passThrough(next http.Handler) http.Handler {
	return next
}

func newTestServer(t *testing.T, svc Service) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, svc, passThrough, zap.NewNop())
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func TestCreateDepositEndpoint(t *testing.T) {
	svc := &mockService{
		CreateDepositFunc: func(_ context.Context, userHex string) (*deposit.Deposit, error) {
			require.Equal(t, "0x1111111111111111111111111111111111111111", userHex)
			return &deposit.Deposit{ID: 42}, nil
		},
	}
	server := newTestServer(t, svc)

	body := `{"user":"0x1111111111111111111111111111111111111111"}`
	resp, err := http.Post(server.URL+"/deposits", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created CreateDepositResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, int64(42), created.ID)
}

func TestCreateDepositEndpointInvalidJSON(t *testing.T) {
	server := newTestServer(t, &mockService{})

	resp, err := http.Post(server.URL+"/deposits", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateDepositEndpointIssuanceHalted(t *testing.T) {
	svc := &mockService{
		CreateDepositFunc: func(context.Context, string) (*deposit.Deposit, error) {
			return nil, apperrors.LockedError(ErrIssuanceHalted, "deposit issuance halted")
		},
	}
	server := newTestServer(t, svc)

	resp, err := http.Post(server.URL+"/deposits", "application/json", strings.NewReader(`{"user":"0x1111111111111111111111111111111111111111"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusLocked, resp.StatusCode)
}

func TestListDepositsEndpoint(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dep := &deposit.Deposit{
		ID:        3,
		User:      common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Salt:      bytes.Repeat([]byte{0xab}, 32),
		Address:   common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Status:    deposit.StatusRouted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var got ListQuery
	svc := &mockService{
		ListDepositsFunc: func(_ context.Context, query ListQuery) ([]*deposit.Deposit, error) {
			got = query
			return []*deposit.Deposit{dep}, nil
		},
	}
	server := newTestServer(t, svc)

	resp, err := http.Get(server.URL + "/deposits?user=0x1111111111111111111111111111111111111111&status=routed&limit=5&offset=10")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "0x1111111111111111111111111111111111111111", got.User)
	require.Equal(t, "routed", got.Status)
	require.Equal(t, 5, got.Limit)
	require.Equal(t, 10, got.Offset)

	var views []DepositView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	require.Len(t, views, 1)
	require.Equal(t, int64(3), views[0].ID)
	require.Equal(t, "0x"+strings.Repeat("ab", 32), views[0].Salt)
	require.Equal(t, dep.Address.Hex(), views[0].Address)
	require.Equal(t, "routed", views[0].Status)
	require.NotEmpty(t, views[0].CreatedAt)
}

func TestListDepositsEndpointBadLimit(t *testing.T) {
	server := newTestServer(t, &mockService{})

	resp, err := http.Get(server.URL + "/deposits?limit=abc")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouteEndpoint(t *testing.T) {
	var gotAddress string
	svc := &mockService{
		RouteFunc: func(_ context.Context, addressHex string) (*sweeper.Summary, error) {
			gotAddress = addressHex
			return &sweeper.Summary{Routed: 2}, nil
		},
	}
	server := newTestServer(t, svc)

	// Empty body sweeps everything.
	resp, err := http.Post(server.URL+"/route", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, gotAddress)

	var summary sweeper.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	require.Equal(t, 2, summary.Routed)

	// A body narrows the run to one address.
	resp2, err := http.Post(server.URL+"/route", "application/json",
		strings.NewReader(`{"address":"0x2222222222222222222222222222222222222222"}`))
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	require.Equal(t, "0x2222222222222222222222222222222222222222", gotAddress)
}

func TestRouteEndpointErrorStatus(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unauthorized", apperrors.UnAuthorizedError(sweeper.ErrCallerNotAllowed, "operator not allowed on-chain"), http.StatusUnauthorized},
		{"not found", apperrors.ResourceNotFoundError(nil, "deposit not found"), http.StatusNotFound},
		{"chain down", apperrors.DependencyFailureError(nil, "chain unavailable"), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{
				RouteFunc: func(context.Context, string) (*sweeper.Summary, error) {
					return nil, tc.err
				},
			}
			server := newTestServer(t, svc)

			resp, err := http.Post(server.URL+"/route", "application/json", nil)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
