package sweeper

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/routelabs/sweep-middleware/pkg/deposit"
	"github.com/routelabs/sweep-middleware/pkg/depositstore"
)

// MockChainClient is a mock implementation of ChainClient
type MockChainClient struct {
	SignerAddressFunc    func() common.Address
	BalanceAtFunc        func(ctx context.Context, addr common.Address) (*big.Int, error)
	TokenBalanceFunc     func(ctx context.Context, token, holder common.Address) (*big.Int, error)
	HasCodeFunc          func(ctx context.Context, addr common.Address) (bool, error)
	PredictAddressesFunc func(ctx context.Context, salts [][32]byte) ([]common.Address, error)
	ActivateProxiesFunc  func(ctx context.Context, salts [][32]byte) (common.Hash, error)
	TransferFundsFunc    func(ctx context.Context, proxy common.Address, etherAmount *big.Int, tokens []common.Address, amounts []*big.Int, treasury common.Address) (common.Hash, error)
}

func (m *MockChainClient) SignerAddress() common.Address {
	if m.SignerAddressFunc != nil {
		return m.SignerAddressFunc()
	}
	return common.HexToAddress("0x00000000000000000000000000000000000000aa")
}

func (m *MockChainClient) BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	if m.BalanceAtFunc != nil {
		return m.BalanceAtFunc(ctx, addr)
	}
	return big.NewInt(0), nil
}

func (m *MockChainClient) TokenBalance(ctx context.Context, token, holder common.Address) (*big.Int, error) {
	if m.TokenBalanceFunc != nil {
		return m.TokenBalanceFunc(ctx, token, holder)
	}
	return big.NewInt(0), nil
}

func (m *MockChainClient) HasCode(ctx context.Context, addr common.Address) (bool, error) {
	if m.HasCodeFunc != nil {
		return m.HasCodeFunc(ctx, addr)
	}
	return false, nil
}

func (m *MockChainClient) PredictAddresses(ctx context.Context, salts [][32]byte) ([]common.Address, error) {
	if m.PredictAddressesFunc != nil {
		return m.PredictAddressesFunc(ctx, salts)
	}
	return nil, nil
}

func (m *MockChainClient) ActivateProxies(ctx context.Context, salts [][32]byte) (common.Hash, error) {
	if m.ActivateProxiesFunc != nil {
		return m.ActivateProxiesFunc(ctx, salts)
	}
	return common.Hash{}, nil
}

func (m *MockChainClient) TransferFunds(ctx context.Context, proxy common.Address, etherAmount *big.Int, tokens []common.Address, amounts []*big.Int, treasury common.Address) (common.Hash, error) {
	if m.TransferFundsFunc != nil {
		return m.TransferFundsFunc(ctx, proxy, etherAmount, tokens, amounts, treasury)
	}
	return common.Hash{}, nil
}

// MockGate is a mock implementation of PermissionGate
type MockGate struct {
	AllowedCallerFunc   func(ctx context.Context, addr common.Address) (bool, error)
	AllowedTreasuryFunc func(ctx context.Context, addr common.Address) (bool, error)
}

func (m *MockGate) AllowedCaller(ctx context.Context, addr common.Address) (bool, error) {
	if m.AllowedCallerFunc != nil {
		return m.AllowedCallerFunc(ctx, addr)
	}
	return true, nil
}

func (m *MockGate) AllowedTreasury(ctx context.Context, addr common.Address) (bool, error) {
	if m.AllowedTreasuryFunc != nil {
		return m.AllowedTreasuryFunc(ctx, addr)
	}
	return true, nil
}

// memStore is an in-memory Store with the same CAS semantics as the postgres
// implementation, so claim races can be exercised without a database.
type memStore struct {
	mu   sync.Mutex
	rows map[int64]*memRow
}

type memRow struct {
	dep       deposit.Deposit
	claimedAt *time.Time
}

func newMemStore(deposits ...*deposit.Deposit) *memStore {
	s := &memStore{rows: make(map[int64]*memRow)}
	for _, dep := range deposits {
		s.rows[dep.ID] = &memRow{dep: *dep}
	}
	return s
}

func (s *memStore) GetByAddress(_ context.Context, addr common.Address) (*deposit.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.dep.Address == addr {
			dep := row.dep
			return &dep, nil
		}
	}
	return nil, depositstore.ErrNotFound
}

func (s *memStore) List(_ context.Context, filter deposit.Filter) ([]*deposit.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*deposit.Deposit
	for id := int64(1); len(out) < len(s.rows); id++ {
		row, ok := s.rows[id]
		if !ok {
			continue
		}
		if len(filter.Statuses) > 0 {
			match := false
			for _, st := range filter.Statuses {
				if row.dep.Status == st {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		dep := row.dep
		out = append(out, &dep)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *memStore) Transition(_ context.Context, id int64, from, to deposit.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return depositstore.ErrNotFound
	}
	if row.dep.Status != from {
		return depositstore.ErrStaleStatus
	}
	row.dep.Status = to
	return nil
}

func (s *memStore) Claim(_ context.Context, id int64, status deposit.Status, lease time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return false, nil
	}
	if row.dep.Status != status {
		return false, nil
	}
	if row.claimedAt != nil && row.claimedAt.After(time.Now().Add(-lease)) {
		return false, nil
	}
	now := time.Now()
	row.claimedAt = &now
	return true, nil
}

func (s *memStore) MarkRouted(_ context.Context, id int64, txHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return depositstore.ErrNotFound
	}
	if row.dep.Status != deposit.StatusProxied {
		return depositstore.ErrStaleStatus
	}
	row.dep.Status = deposit.StatusRouted
	row.dep.RouteTxHash = txHash
	row.dep.LastError = ""
	row.claimedAt = nil
	return nil
}

func (s *memStore) RecordRouteTx(_ context.Context, id int64, txHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return depositstore.ErrNotFound
	}
	if row.dep.Status != deposit.StatusRouted {
		return depositstore.ErrStaleStatus
	}
	row.dep.RouteTxHash = txHash
	row.dep.LastError = ""
	row.claimedAt = nil
	return nil
}

func (s *memStore) RecordError(_ context.Context, id int64, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[id]
	if !ok {
		return depositstore.ErrNotFound
	}
	row.dep.LastError = msg
	row.claimedAt = nil
	return nil
}

func (s *memStore) get(id int64) deposit.Deposit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows[id].dep
}
