package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/routelabs/sweep-middleware/pkg/app/errors"
	"github.com/routelabs/sweep-middleware/pkg/deposit"
	"github.com/routelabs/sweep-middleware/pkg/depositstore"
	"github.com/routelabs/sweep-middleware/pkg/derive"
	"github.com/routelabs/sweep-middleware/pkg/ethereum"
	"github.com/routelabs/sweep-middleware/pkg/sweeper"
)

type mockStore struct {
	CreateFunc func(ctx context.Context, dep *deposit.Deposit) error
	ListFunc   func(ctx context.Context, filter deposit.Filter) ([]*deposit.Deposit, error)
}

func (m *mockStore) Create(ctx context.Context, dep *deposit.Deposit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, dep)
	}
	dep.ID = 1
	return nil
}

func (m *mockStore) List(ctx context.Context, filter deposit.Filter) ([]*deposit.Deposit, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

type mockRouter struct {
	RouteDepositsFunc func(ctx context.Context, scope sweeper.Scope) (*sweeper.Summary, error)
}

func (m *mockRouter) RouteDeposits(ctx context.Context, scope sweeper.Scope) (*sweeper.Summary, error) {
	if m.RouteDepositsFunc != nil {
		return m.RouteDepositsFunc(ctx, scope)
	}
	return &sweeper.Summary{}, nil
}

var (
	testOperator = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testDeployer = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	testUser     = "0x1111111111111111111111111111111111111111"
	testHash     = common.HexToHash("0x2222222222222222222222222222222222222222222222222222222222222222")
)

func newTestDepositService(store Store, router Router) Service {
	return NewService(store, router, testOperator, testDeployer, testHash, zap.NewNop())
}

func TestCreateDeposit(t *testing.T) {
	var created *deposit.Deposit
	store := &mockStore{
		CreateFunc: func(_ context.Context, dep *deposit.Deposit) error {
			dep.ID = 42
			created = dep
			return nil
		},
	}
	svc := newTestDepositService(store, &mockRouter{})

	dep, err := svc.CreateDeposit(context.Background(), testUser)
	require.NoError(t, err)
	require.Equal(t, int64(42), dep.ID)
	require.Equal(t, common.HexToAddress(testUser), dep.User)
	require.Len(t, dep.Salt, derive.SaltSize)

	// The stored address must match the local derivation of the stored salt.
	salt, err := derive.SaltFromBytes(created.Salt)
	require.NoError(t, err)
	want := derive.ProxyAddress(derive.Salt(salt, testOperator), testDeployer, testHash)
	require.Equal(t, want, created.Address)
}

func TestCreateDepositInvalidUser(t *testing.T) {
	svc := newTestDepositService(&mockStore{}, &mockRouter{})

	for _, user := range []string{"", "nothex", "0x1234"} {
		_, err := svc.CreateDeposit(context.Background(), user)
		require.Error(t, err)
		require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
	}
}

func TestCreateDepositRetriesSaltCollision(t *testing.T) {
	attempts := 0
	store := &mockStore{
		CreateFunc: func(_ context.Context, dep *deposit.Deposit) error {
			attempts++
			if attempts == 1 {
				return depositstore.ErrDuplicateSalt
			}
			dep.ID = 7
			return nil
		},
	}
	svc := newTestDepositService(store, &mockRouter{})

	dep, err := svc.CreateDeposit(context.Background(), testUser)
	require.NoError(t, err)
	require.Equal(t, int64(7), dep.ID)
	require.Equal(t, 2, attempts)
}

func TestCreateDepositHaltsAfterRepeatedCollisions(t *testing.T) {
	attempts := 0
	store := &mockStore{
		CreateFunc: func(context.Context, *deposit.Deposit) error {
			attempts++
			return depositstore.ErrDuplicateSalt
		},
	}
	svc := newTestDepositService(store, &mockRouter{})

	_, err := svc.CreateDeposit(context.Background(), testUser)
	require.ErrorIs(t, err, ErrIssuanceHalted)
	require.True(t, apperrors.Is(err, apperrors.CategoryLocked))
	require.Equal(t, maxSaltAttempts, attempts)

	// The halt latches: no further store calls.
	_, err = svc.CreateDeposit(context.Background(), testUser)
	require.ErrorIs(t, err, ErrIssuanceHalted)
	require.Equal(t, maxSaltAttempts, attempts)
}

func TestCreateDepositHaltsOnAddressCollision(t *testing.T) {
	store := &mockStore{
		CreateFunc: func(context.Context, *deposit.Deposit) error {
			return depositstore.ErrDuplicateAddress
		},
	}
	svc := newTestDepositService(store, &mockRouter{})

	_, err := svc.CreateDeposit(context.Background(), testUser)
	require.ErrorIs(t, err, ErrAddressCollision)
	require.True(t, apperrors.Is(err, apperrors.CategoryLocked))

	_, err = svc.CreateDeposit(context.Background(), testUser)
	require.ErrorIs(t, err, ErrIssuanceHalted)
}

func TestListDepositsDefaults(t *testing.T) {
	var got deposit.Filter
	store := &mockStore{
		ListFunc: func(_ context.Context, filter deposit.Filter) ([]*deposit.Deposit, error) {
			got = filter
			return nil, nil
		},
	}
	svc := newTestDepositService(store, &mockRouter{})

	_, err := svc.ListDeposits(context.Background(), ListQuery{})
	require.NoError(t, err)
	require.Equal(t, 10, got.Limit)
	require.Equal(t, 0, got.Offset)
	require.Nil(t, got.User)
	require.Nil(t, got.Address)
	require.Empty(t, got.Statuses)

	_, err = svc.ListDeposits(context.Background(), ListQuery{Limit: 500, Offset: -3})
	require.NoError(t, err)
	require.Equal(t, 100, got.Limit)
	require.Equal(t, 0, got.Offset)
}

func TestListDepositsFilters(t *testing.T) {
	var got deposit.Filter
	store := &mockStore{
		ListFunc: func(_ context.Context, filter deposit.Filter) ([]*deposit.Deposit, error) {
			got = filter
			return nil, nil
		},
	}
	svc := newTestDepositService(store, &mockRouter{})

	address := "0x3333333333333333333333333333333333333333"
	salt := "0x" + strings.Repeat("cd", 32)
	_, err := svc.ListDeposits(context.Background(), ListQuery{
		User:    testUser,
		Salt:    salt,
		Address: address,
		Status:  string(deposit.StatusProxied),
		Limit:   25,
	})
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress(testUser), *got.User)
	require.Equal(t, bytes.Repeat([]byte{0xcd}, 32), got.Salt)
	require.Equal(t, common.HexToAddress(address), *got.Address)
	require.Equal(t, []deposit.Status{deposit.StatusProxied}, got.Statuses)
	require.Equal(t, 25, got.Limit)
}

func TestListDepositsRejectsBadFilters(t *testing.T) {
	svc := newTestDepositService(&mockStore{}, &mockRouter{})

	cases := []ListQuery{
		{User: "nothex"},
		{Salt: "0x1234"},
		{Address: "0x12"},
		{Status: "confirmed"},
	}
	for _, query := range cases {
		_, err := svc.ListDeposits(context.Background(), query)
		require.Error(t, err)
		require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
	}
}

func TestRouteScopes(t *testing.T) {
	var got sweeper.Scope
	router := &mockRouter{
		RouteDepositsFunc: func(_ context.Context, scope sweeper.Scope) (*sweeper.Summary, error) {
			got = scope
			return &sweeper.Summary{}, nil
		},
	}
	svc := newTestDepositService(&mockStore{}, router)

	_, err := svc.Route(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, got.Address)

	address := "0x4444444444444444444444444444444444444444"
	_, err = svc.Route(context.Background(), address)
	require.NoError(t, err)
	require.NotNil(t, got.Address)
	require.Equal(t, common.HexToAddress(address), *got.Address)

	_, err = svc.Route(context.Background(), "nothex")
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestRouteErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		category apperrors.Category
	}{
		{"caller denied", sweeper.ErrCallerNotAllowed, apperrors.CategoryUnauthorized},
		{"treasury denied", sweeper.ErrTreasuryNotAllowed, apperrors.CategoryUnauthorized},
		{"unknown address", depositstore.ErrNotFound, apperrors.CategoryResourceNotFound},
		{"chain down", ethereum.ErrChainUnavailable, apperrors.CategoryDependencyFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := &mockRouter{
				RouteDepositsFunc: func(context.Context, sweeper.Scope) (*sweeper.Summary, error) {
					return nil, tc.err
				},
			}
			svc := newTestDepositService(&mockStore{}, router)

			_, err := svc.Route(context.Background(), "")
			require.Error(t, err)
			require.True(t, apperrors.Is(err, tc.category))
		})
	}
}
