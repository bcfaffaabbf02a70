// Package sweeper moves accumulated deposit funds to the treasury. A route
// run selects candidate deposits, activates their proxies when needed and
// calls transferFunds on each, advancing the ledger as it goes.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/routelabs/sweep-middleware/internal/metrics"
	"github.com/routelabs/sweep-middleware/pkg/config"
	"github.com/routelabs/sweep-middleware/pkg/deposit"
	"github.com/routelabs/sweep-middleware/pkg/depositstore"
	"github.com/routelabs/sweep-middleware/pkg/derive"
	"github.com/routelabs/sweep-middleware/pkg/ethereum"
)

// ChainClient defines the chain interactions a route run needs
type ChainClient interface {
	SignerAddress() common.Address
	BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error)
	TokenBalance(ctx context.Context, token, holder common.Address) (*big.Int, error)
	HasCode(ctx context.Context, addr common.Address) (bool, error)
	PredictAddresses(ctx context.Context, salts [][32]byte) ([]common.Address, error)
	ActivateProxies(ctx context.Context, salts [][32]byte) (common.Hash, error)
	TransferFunds(ctx context.Context, proxy common.Address, etherAmount *big.Int, tokens []common.Address, amounts []*big.Int, treasury common.Address) (common.Hash, error)
}

// PermissionGate answers the allowlist checks the router enforces on-chain
type PermissionGate interface {
	AllowedCaller(ctx context.Context, addr common.Address) (bool, error)
	AllowedTreasury(ctx context.Context, addr common.Address) (bool, error)
}

// Store defines the ledger operations a route run needs
type Store interface {
	GetByAddress(ctx context.Context, addr common.Address) (*deposit.Deposit, error)
	List(ctx context.Context, filter deposit.Filter) ([]*deposit.Deposit, error)
	Transition(ctx context.Context, id int64, from, to deposit.Status) error
	Claim(ctx context.Context, id int64, status deposit.Status, lease time.Duration) (bool, error)
	MarkRouted(ctx context.Context, id int64, txHash string) error
	RecordRouteTx(ctx context.Context, id int64, txHash string) error
	RecordError(ctx context.Context, id int64, msg string) error
}

// Permission preflight failures abort the whole run: every transfer would
// revert on-chain anyway.
var (
	ErrCallerNotAllowed   = errors.New("operator is not an allowed caller")
	ErrTreasuryNotAllowed = errors.New("treasury is not an allowed treasury")
)

// Scope selects which deposits a run sweeps. A nil Address means all.
type Scope struct {
	Address *common.Address
}

func (s Scope) label() string {
	if s.Address != nil {
		return "single"
	}
	return "all"
}

// ItemFailure records one deposit that could not be routed
type ItemFailure struct {
	DepositID int64          `json:"deposit_id"`
	Address   common.Address `json:"address"`
	Reason    string         `json:"reason"`
}

// Summary aggregates the outcome of one route run
type Summary struct {
	RunID     uuid.UUID              `json:"run_id"`
	Scope     string                 `json:"scope"`
	Counts    map[deposit.Status]int `json:"counts"`
	Activated int                    `json:"activated"`
	Routed    int                    `json:"routed"`
	Skipped   int                    `json:"skipped"`
	Failed    int                    `json:"failed"`
	TxHashes  []string               `json:"tx_hashes"`
	Failures  []ItemFailure          `json:"failures,omitempty"`
}

// Service orchestrates route runs
type Service struct {
	store    Store
	chain    ChainClient
	gate     PermissionGate
	cfg      *config.RouteConfig
	treasury common.Address
	tokens   []common.Address
	logger   *zap.Logger
}

// NewService creates a sweep orchestrator
func NewService(
	store Store,
	chain ChainClient,
	gate PermissionGate,
	cfg *config.RouteConfig,
	treasury common.Address,
	tokens []common.Address,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:    store,
		chain:    chain,
		gate:     gate,
		cfg:      cfg,
		treasury: treasury,
		tokens:   tokens,
		logger:   logger,
	}
}

// RouteDeposits runs one sweep over the deposits selected by scope. Item
// failures are isolated and recorded in the summary; the run itself only
// fails when the chain is unreachable or the permission preflight denies the
// operator. Runs are re-entrant: concurrent runs race on per-row claims and
// each row is swept by at most one of them.
func (s *Service) RouteDeposits(ctx context.Context, scope Scope) (*Summary, error) {
	start := time.Now()
	summary := &Summary{
		RunID:    uuid.New(),
		Scope:    scope.label(),
		Counts:   make(map[deposit.Status]int),
		TxHashes: []string{},
	}
	logger := s.logger.With(zap.String("run_id", summary.RunID.String()))

	result := "ok"
	defer func() {
		metrics.RouteRuns.WithLabelValues(summary.Scope, result).Inc()
		metrics.RouteDuration.WithLabelValues(summary.Scope).Observe(time.Since(start).Seconds())
	}()

	if err := s.preflight(ctx); err != nil {
		result = "aborted"
		return summary, err
	}

	candidates, err := s.selectCandidates(ctx, scope)
	if err != nil {
		result = "aborted"
		return summary, err
	}
	for _, dep := range candidates {
		summary.Counts[dep.Status]++
	}

	logger.Info("Route run started",
		zap.String("scope", summary.Scope),
		zap.Int("candidates", len(candidates)))

	for _, dep := range candidates {
		outcome, err := s.routeOne(ctx, logger, dep, summary)
		metrics.RouteItems.WithLabelValues(outcome).Inc()
		if err != nil {
			// Only an unreachable chain stops the run; everything else was
			// already recorded against the row.
			result = "aborted"
			return summary, err
		}
	}

	logger.Info("Route run finished",
		zap.Int("activated", summary.Activated),
		zap.Int("routed", summary.Routed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", time.Since(start)))
	return summary, nil
}

func (s *Service) preflight(ctx context.Context) error {
	operator := s.chain.SignerAddress()

	allowed, err := s.gate.AllowedCaller(ctx, operator)
	if err != nil {
		return fmt.Errorf("caller permission check failed: %w", err)
	}
	if !allowed {
		return fmt.Errorf("%w: %s", ErrCallerNotAllowed, operator.Hex())
	}

	allowed, err = s.gate.AllowedTreasury(ctx, s.treasury)
	if err != nil {
		return fmt.Errorf("treasury permission check failed: %w", err)
	}
	if !allowed {
		return fmt.Errorf("%w: %s", ErrTreasuryNotAllowed, s.treasury.Hex())
	}
	return nil
}

func (s *Service) selectCandidates(ctx context.Context, scope Scope) ([]*deposit.Deposit, error) {
	if scope.Address != nil {
		dep, err := s.store.GetByAddress(ctx, *scope.Address)
		if err != nil {
			return nil, fmt.Errorf("failed to load deposit %s: %w", scope.Address.Hex(), err)
		}
		return []*deposit.Deposit{dep}, nil
	}

	deposits, err := s.store.List(ctx, deposit.Filter{
		Statuses: []deposit.Status{deposit.StatusPending, deposit.StatusProxied, deposit.StatusRouted},
		Limit:    s.cfg.BatchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	return deposits, nil
}

// routeOne sweeps a single deposit. The returned error is non-nil only when
// the run should abort; per-item failures are absorbed into the summary.
func (s *Service) routeOne(ctx context.Context, logger *zap.Logger, dep *deposit.Deposit, summary *Summary) (string, error) {
	itemLogger := logger.With(
		zap.Int64("deposit_id", dep.ID),
		zap.String("address", dep.Address.Hex()),
		zap.String("status", string(dep.Status)))

	etherAmount, tokens, amounts, err := s.collectBalances(ctx, dep.Address)
	if err != nil {
		if ethereum.IsUnavailable(err) {
			itemLogger.Error("Chain unreachable, aborting run", zap.Error(err))
			return "aborted", err
		}
		return s.failItem(ctx, itemLogger, dep, summary, err), nil
	}

	if etherAmount.Sign() == 0 && len(tokens) == 0 {
		itemLogger.Debug("No balance to route")
		summary.Skipped++
		return "skipped", nil
	}

	claimed, err := s.store.Claim(ctx, dep.ID, dep.Status, s.cfg.ClaimLease)
	if err != nil {
		return s.failItem(ctx, itemLogger, dep, summary, err), nil
	}
	if !claimed {
		itemLogger.Debug("Deposit claimed elsewhere")
		summary.Skipped++
		return "skipped", nil
	}

	status := dep.Status
	if status == deposit.StatusPending {
		if err := s.activate(ctx, itemLogger, dep); err != nil {
			if ethereum.IsUnavailable(err) {
				return "aborted", err
			}
			return s.failItem(ctx, itemLogger, dep, summary, err), nil
		}
		status = deposit.StatusProxied
		summary.Activated++
	}

	txHash, err := s.chain.TransferFunds(ctx, dep.Address, etherAmount, tokens, amounts, s.treasury)
	if err != nil {
		metrics.TransactionsSent.WithLabelValues("transfer", "failed").Inc()
		if ethereum.IsUnavailable(err) {
			return "aborted", err
		}
		return s.failItem(ctx, itemLogger, dep, summary, err), nil
	}
	metrics.TransactionsSent.WithLabelValues("transfer", "confirmed").Inc()

	if status == deposit.StatusRouted {
		// Fresh funds on an already swept address: record the new tx, the
		// status never goes backwards.
		err = s.store.RecordRouteTx(ctx, dep.ID, txHash.Hex())
	} else {
		err = s.store.MarkRouted(ctx, dep.ID, txHash.Hex())
	}
	if err != nil {
		return s.failItem(ctx, itemLogger, dep, summary, err), nil
	}

	itemLogger.Info("Deposit routed",
		zap.String("tx_hash", txHash.Hex()),
		zap.String("ether_amount", decimal.NewFromBigInt(etherAmount, -18).String()),
		zap.Int("token_count", len(tokens)))
	summary.Routed++
	summary.TxHashes = append(summary.TxHashes, txHash.Hex())
	return "routed", nil
}

// collectBalances reads the ETH balance plus every configured token balance,
// keeping only tokens with something to move.
func (s *Service) collectBalances(ctx context.Context, addr common.Address) (*big.Int, []common.Address, []*big.Int, error) {
	etherAmount, err := s.chain.BalanceAt(ctx, addr)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read balance of %s: %w", addr.Hex(), err)
	}

	var tokens []common.Address
	var amounts []*big.Int
	for _, token := range s.tokens {
		balance, err := s.chain.TokenBalance(ctx, token, addr)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to read token %s balance of %s: %w", token.Hex(), addr.Hex(), err)
		}
		if balance.Sign() > 0 {
			tokens = append(tokens, token)
			amounts = append(amounts, balance)
		}
	}
	return etherAmount, tokens, amounts, nil
}

// activate deploys the proxy behind dep if it is not on chain yet, then
// advances the row to proxied. Finding code at the address already means an
// earlier run died between deploy and the status update, so only the ledger
// needs to catch up.
func (s *Service) activate(ctx context.Context, logger *zap.Logger, dep *deposit.Deposit) error {
	hasCode, err := s.chain.HasCode(ctx, dep.Address)
	if err != nil {
		return err
	}

	if !hasCode {
		salt, err := derive.SaltFromBytes(dep.Salt)
		if err != nil {
			return err
		}

		predicted, err := s.chain.PredictAddresses(ctx, [][32]byte{salt})
		if err != nil {
			return err
		}
		if len(predicted) != 1 || predicted[0] != dep.Address {
			return fmt.Errorf("deployer predicts %v for deposit %d, ledger has %s",
				predicted, dep.ID, dep.Address.Hex())
		}

		txHash, err := s.chain.ActivateProxies(ctx, [][32]byte{salt})
		if err != nil {
			metrics.TransactionsSent.WithLabelValues("activate", "failed").Inc()
			return err
		}
		metrics.TransactionsSent.WithLabelValues("activate", "confirmed").Inc()
		logger.Info("Proxy activated", zap.String("tx_hash", txHash.Hex()))
	} else {
		logger.Info("Proxy code already on chain, advancing ledger")
	}

	if err := s.store.Transition(ctx, dep.ID, deposit.StatusPending, deposit.StatusProxied); err != nil {
		// Claimed rows cannot move under us, so a CAS miss here is a bug
		// rather than a race, but it still must not kill the run.
		return err
	}
	return nil
}

// failItem records the failure against the row and folds it into the summary
func (s *Service) failItem(ctx context.Context, logger *zap.Logger, dep *deposit.Deposit, summary *Summary, cause error) string {
	logger.Warn("Failed to route deposit", zap.Error(cause))

	if err := s.store.RecordError(ctx, dep.ID, cause.Error()); err != nil &&
		!errors.Is(err, depositstore.ErrNotFound) {
		logger.Error("Failed to record deposit error", zap.Error(err))
	}

	summary.Failed++
	summary.Failures = append(summary.Failures, ItemFailure{
		DepositID: dep.ID,
		Address:   dep.Address,
		Reason:    cause.Error(),
	})
	return "failed"
}
