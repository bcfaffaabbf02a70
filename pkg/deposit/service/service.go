// Package service implements deposit issuance and the route trigger behind
// the HTTP API.
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/routelabs/sweep-middleware/internal/metrics"
	apperrors "github.com/routelabs/sweep-middleware/pkg/app/errors"
	"github.com/routelabs/sweep-middleware/pkg/deposit"
	"github.com/routelabs/sweep-middleware/pkg/depositstore"
	"github.com/routelabs/sweep-middleware/pkg/derive"
	"github.com/routelabs/sweep-middleware/pkg/ethereum"
	"github.com/routelabs/sweep-middleware/pkg/sweeper"
)

// maxSaltAttempts bounds retries on a salt collision. Random 32-byte salts
// colliding repeatedly means the entropy source is broken, not bad luck.
const maxSaltAttempts = 5

var (
	ErrIssuanceHalted   = errors.New("deposit issuance halted after repeated salt collisions")
	ErrInvalidStatus    = errors.New("invalid status filter")
	ErrAddressCollision = errors.New("derived address collided with an existing deposit")
)

// Store is the narrow data-access interface for the deposit service
type Store interface {
	Create(ctx context.Context, dep *deposit.Deposit) error
	List(ctx context.Context, filter deposit.Filter) ([]*deposit.Deposit, error)
}

// Router triggers sweep runs
type Router interface {
	RouteDeposits(ctx context.Context, scope sweeper.Scope) (*sweeper.Summary, error)
}

// ListQuery carries the optional filters of a deposit listing
type ListQuery struct {
	User    string
	Salt    string
	Address string
	Status  string
	Limit   int
	Offset  int
}

// Service defines the deposit API business logic
type Service interface {
	CreateDeposit(ctx context.Context, userHex string) (*deposit.Deposit, error)
	ListDeposits(ctx context.Context, query ListQuery) ([]*deposit.Deposit, error)
	Route(ctx context.Context, addressHex string) (*sweeper.Summary, error)
}

type depositService struct {
	store  Store
	router Router
	logger *zap.Logger

	operator     common.Address
	deployer     common.Address
	initCodeHash common.Hash

	// halted latches after repeated salt collisions and blocks further
	// issuance until the operator restarts the service.
	halted atomic.Bool
}

// NewService creates a deposit service. Addresses are predicted locally with
// the same derivation the deployer contract uses, so issuance needs no chain
// round-trip.
func NewService(
	store Store,
	router Router,
	operator common.Address,
	deployer common.Address,
	initCodeHash common.Hash,
	logger *zap.Logger,
) Service {
	return &depositService{
		store:        store,
		router:       router,
		logger:       logger,
		operator:     operator,
		deployer:     deployer,
		initCodeHash: initCodeHash,
	}
}

// CreateDeposit issues a fresh deposit address for the given user. The
// request salt is random; on the freak chance of a collision a new salt is
// drawn, and after maxSaltAttempts issuance halts instead of looping.
func (s *depositService) CreateDeposit(ctx context.Context, userHex string) (*deposit.Deposit, error) {
	if s.halted.Load() {
		return nil, apperrors.LockedError(ErrIssuanceHalted, "deposit issuance halted")
	}

	user, err := derive.AddressFromHex(userHex)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid user address")
	}

	for attempt := 1; attempt <= maxSaltAttempts; attempt++ {
		var requestSalt [derive.SaltSize]byte
		if _, err := rand.Read(requestSalt[:]); err != nil {
			return nil, fmt.Errorf("failed to generate salt: %w", err)
		}

		salt := derive.Salt(requestSalt, s.operator)
		address := derive.ProxyAddress(salt, s.deployer, s.initCodeHash)

		dep := &deposit.Deposit{
			User:    user,
			Salt:    requestSalt[:],
			Address: address,
		}

		err := s.store.Create(ctx, dep)
		if err == nil {
			metrics.DepositsCreated.Inc()
			s.logger.Info("Deposit created",
				zap.Int64("deposit_id", dep.ID),
				zap.String("user", user.Hex()),
				zap.String("address", address.Hex()))
			return dep, nil
		}

		if errors.Is(err, depositstore.ErrDuplicateSalt) {
			s.logger.Warn("Salt collision, retrying",
				zap.Int("attempt", attempt),
				zap.String("user", user.Hex()))
			continue
		}
		if errors.Is(err, depositstore.ErrDuplicateAddress) {
			// A distinct salt mapping to a stored address means the
			// derivation inputs changed underneath the ledger.
			s.halted.Store(true)
			s.logger.Error("Derived address collision, halting issuance",
				zap.String("address", address.Hex()))
			return nil, apperrors.LockedError(ErrAddressCollision, "derived address collision")
		}
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}

	s.halted.Store(true)
	s.logger.Error("Repeated salt collisions, halting issuance")
	return nil, apperrors.LockedError(ErrIssuanceHalted, "deposit issuance halted")
}

// ListDeposits returns deposits matching the query, oldest first
func (s *depositService) ListDeposits(ctx context.Context, query ListQuery) ([]*deposit.Deposit, error) {
	filter := deposit.Filter{
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if query.User != "" {
		user, err := derive.AddressFromHex(query.User)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "invalid user filter")
		}
		filter.User = &user
	}
	if query.Salt != "" {
		salt, err := derive.SaltFromHex(query.Salt)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "invalid salt filter")
		}
		filter.Salt = salt[:]
	}
	if query.Address != "" {
		address, err := derive.AddressFromHex(query.Address)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "invalid address filter")
		}
		filter.Address = &address
	}
	if query.Status != "" {
		status := deposit.Status(query.Status)
		if !status.Valid() {
			return nil, apperrors.BadRequestError(ErrInvalidStatus, "invalid status filter")
		}
		filter.Statuses = []deposit.Status{status}
	}

	deposits, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	return deposits, nil
}

// Route triggers a sweep run, over all deposits or a single address
func (s *depositService) Route(ctx context.Context, addressHex string) (*sweeper.Summary, error) {
	var scope sweeper.Scope
	if addressHex != "" {
		address, err := derive.AddressFromHex(addressHex)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "invalid address")
		}
		scope.Address = &address
	}

	summary, err := s.router.RouteDeposits(ctx, scope)
	if err != nil {
		switch {
		case errors.Is(err, sweeper.ErrCallerNotAllowed),
			errors.Is(err, sweeper.ErrTreasuryNotAllowed):
			return nil, apperrors.UnAuthorizedError(err, "operator not allowed on-chain")
		case errors.Is(err, depositstore.ErrNotFound):
			return nil, apperrors.ResourceNotFoundError(err, "deposit not found")
		case ethereum.IsUnavailable(err):
			return nil, apperrors.DependencyFailureError(err, "chain unavailable")
		}
		return nil, fmt.Errorf("route run failed: %w", err)
	}
	return summary, nil
}
