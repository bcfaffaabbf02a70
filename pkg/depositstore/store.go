// Package depositstore persists deposit rows and their lifecycle state.
//
// The store is the single source of truth for sweep eligibility. All status
// changes are optimistic compare-and-swap updates keyed on the current status,
// and per-row claims are the only locking primitive: there is no table-wide
// lock anywhere.
package depositstore

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/routelabs/sweep-middleware/pkg/deposit"
)

var (
	// ErrNotFound is returned when a deposit lookup finds no matching row.
	ErrNotFound = errors.New("deposit not found")
	// ErrDuplicateSalt means the derived salt already exists; the caller must
	// retry with fresh randomness.
	ErrDuplicateSalt = errors.New("duplicate deposit salt")
	// ErrDuplicateAddress means the derived address already exists. Derivation
	// is injective under a fixed deployer and init code, so this indicates a
	// deployer misconfiguration rather than bad luck.
	ErrDuplicateAddress = errors.New("duplicate deposit address")
	// ErrStaleStatus means a compare-and-swap transition lost to a concurrent
	// writer; the caller must re-read the row before retrying.
	ErrStaleStatus = errors.New("stale deposit status")
)

// Store defines deposit persistence operations.
type Store interface {
	// Create inserts a new pending deposit and fills in its ledger-assigned
	// fields (ID, CreatedAt, UpdatedAt).
	Create(ctx context.Context, dep *deposit.Deposit) error

	// GetByID returns the deposit with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*deposit.Deposit, error)

	// GetByAddress returns the deposit at the given proxy address, or ErrNotFound.
	GetByAddress(ctx context.Context, addr common.Address) (*deposit.Deposit, error)

	// List returns deposits matching the filter ordered by ascending id.
	List(ctx context.Context, filter deposit.Filter) ([]*deposit.Deposit, error)

	// Transition atomically advances a row from one status to the next.
	// Only the forward transition from.Next() is permitted. Returns
	// ErrStaleStatus if the row is no longer in the expected status.
	Transition(ctx context.Context, id int64, from, to deposit.Status) error

	// Claim takes the single-writer lease on a row that is still in the given
	// status. Returns false when another invocation holds an unexpired lease
	// or the status no longer matches. A lease left behind by a crashed
	// invocation becomes reclaimable after it expires.
	Claim(ctx context.Context, id int64, status deposit.Status, lease time.Duration) (bool, error)

	// Release drops the claim lease without changing status.
	Release(ctx context.Context, id int64) error

	// MarkRouted advances proxied -> routed, records the transfer transaction
	// hash, clears any recorded error and releases the claim, all atomically.
	MarkRouted(ctx context.Context, id int64, txHash string) error

	// RecordRouteTx records a fresh transfer transaction on an already routed
	// row (value arrived after the first sweep) and releases the claim. The
	// status stays routed: no regression.
	RecordRouteTx(ctx context.Context, id int64, txHash string) error

	// RecordError stores the latest per-row failure and releases the claim.
	RecordError(ctx context.Context, id int64, msg string) error
}
