package depositstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/routelabs/sweep-middleware/pkg/deposit"
)

const pgUniqueViolation = "23505"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the deposit store
func NewStore(db *bun.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Create(ctx context.Context, dep *deposit.Deposit) error {
	dao := toDepositDao(dep)
	dao.Status = string(deposit.StatusPending)

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("id, created_at, updated_at").
		Exec(ctx)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create deposit: %w", err)
	}

	dep.ID = dao.ID
	dep.Status = deposit.StatusPending
	dep.CreatedAt = dao.CreatedAt
	dep.UpdatedAt = dao.UpdatedAt
	return nil
}

// mapUniqueViolation distinguishes salt and address unique-constraint hits.
// Address collisions cannot happen while derivation is injective, so the
// defensive address constraint points at a deployer misconfiguration.
func mapUniqueViolation(err error) error {
	var pgErr pgdriver.Error
	if !errors.As(err, &pgErr) || pgErr.Field('C') != pgUniqueViolation {
		return nil
	}
	constraint := pgErr.Field('n')
	switch {
	case strings.Contains(constraint, "salt"):
		return ErrDuplicateSalt
	case strings.Contains(constraint, "address"):
		return ErrDuplicateAddress
	}
	return fmt.Errorf("unique violation on %q: %w", constraint, err)
}

func (s *pgStore) GetByID(ctx context.Context, id int64) (*deposit.Deposit, error) {
	dao := new(DepositDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deposit %d: %w", id, err)
	}
	return toDeposit(dao), nil
}

func (s *pgStore) GetByAddress(ctx context.Context, addr common.Address) (*deposit.Deposit, error) {
	dao := new(DepositDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("address = ?", addr.Bytes()).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deposit by address: %w", err)
	}
	return toDeposit(dao), nil
}

func (s *pgStore) List(ctx context.Context, filter deposit.Filter) ([]*deposit.Deposit, error) {
	var daos []*DepositDao

	query := s.db.NewSelect().
		Model(&daos).
		Order("id ASC")

	if filter.User != nil {
		query = query.Where("user_address = ?", filter.User.Bytes())
	}
	if len(filter.Salt) > 0 {
		query = query.Where("salt = ?", filter.Salt)
	}
	if filter.Address != nil {
		query = query.Where("address = ?", filter.Address.Bytes())
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, st := range filter.Statuses {
			statuses = append(statuses, string(st))
		}
		query = query.Where("status IN (?)", bun.In(statuses))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}

	deposits := make([]*deposit.Deposit, 0, len(daos))
	for _, dao := range daos {
		deposits = append(deposits, toDeposit(dao))
	}
	return deposits, nil
}

func (s *pgStore) Transition(ctx context.Context, id int64, from, to deposit.Status) error {
	next, err := from.Next()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStaleStatus, err)
	}
	if to != next {
		return fmt.Errorf("%w: %s -> %s is not a forward transition", ErrStaleStatus, from, to)
	}

	res, err := s.db.NewUpdate().
		Model((*DepositDao)(nil)).
		Set("status = ?", string(to)).
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Where("status = ?", string(from)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition deposit %d: %w", id, err)
	}
	return s.requireUpdated(ctx, res, id, ErrStaleStatus)
}

func (s *pgStore) Claim(ctx context.Context, id int64, status deposit.Status, lease time.Duration) (bool, error) {
	res, err := s.db.NewUpdate().
		Model((*DepositDao)(nil)).
		Set("claimed_at = NOW()").
		Where("id = ?", id).
		Where("status = ?", string(status)).
		Where("claimed_at IS NULL OR claimed_at < ?", time.Now().UTC().Add(-lease)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to claim deposit %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result for deposit %d: %w", id, err)
	}
	return n == 1, nil
}

func (s *pgStore) Release(ctx context.Context, id int64) error {
	_, err := s.db.NewUpdate().
		Model((*DepositDao)(nil)).
		Set("claimed_at = NULL").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to release deposit %d: %w", id, err)
	}
	return nil
}

func (s *pgStore) MarkRouted(ctx context.Context, id int64, txHash string) error {
	res, err := s.db.NewUpdate().
		Model((*DepositDao)(nil)).
		Set("status = ?", string(deposit.StatusRouted)).
		Set("route_tx_hash = ?", txHash).
		Set("last_error = NULL").
		Set("claimed_at = NULL").
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Where("status = ?", string(deposit.StatusProxied)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark deposit %d routed: %w", id, err)
	}
	return s.requireUpdated(ctx, res, id, ErrStaleStatus)
}

func (s *pgStore) RecordRouteTx(ctx context.Context, id int64, txHash string) error {
	res, err := s.db.NewUpdate().
		Model((*DepositDao)(nil)).
		Set("route_tx_hash = ?", txHash).
		Set("last_error = NULL").
		Set("claimed_at = NULL").
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Where("status = ?", string(deposit.StatusRouted)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record route tx for deposit %d: %w", id, err)
	}
	return s.requireUpdated(ctx, res, id, ErrStaleStatus)
}

func (s *pgStore) RecordError(ctx context.Context, id int64, msg string) error {
	_, err := s.db.NewUpdate().
		Model((*DepositDao)(nil)).
		Set("last_error = ?", msg).
		Set("claimed_at = NULL").
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record error for deposit %d: %w", id, err)
	}
	return nil
}

// requireUpdated turns a zero-row CAS update into conflictErr, or ErrNotFound
// when the row does not exist at all.
func (s *pgStore) requireUpdated(ctx context.Context, res sql.Result, id int64, conflictErr error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result for deposit %d: %w", id, err)
	}
	if n == 1 {
		return nil
	}

	exists, err := s.db.NewSelect().
		Model((*DepositDao)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check deposit %d: %w", id, err)
	}
	if !exists {
		return ErrNotFound
	}
	return conflictErr
}
