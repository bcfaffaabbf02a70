// Package deposit defines the core domain types for tracked deposit addresses.
package deposit

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Status is the lifecycle state of a deposit row.
//
// Transitions are strictly forward: pending -> proxied -> routed.
// A routed row is immutable history, except that new value arriving at the
// same proxy address is swept again in a later route cycle without a status
// change.
type Status string

const (
	// StatusPending means the address is derived and persisted but the proxy
	// is not yet deployed on-chain.
	StatusPending Status = "pending"
	// StatusProxied means the proxy contract exists at the derived address.
	StatusProxied Status = "proxied"
	// StatusRouted means collected funds have been transferred to the treasury
	// at least once.
	StatusRouted Status = "routed"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProxied, StatusRouted:
		return true
	}
	return false
}

// Next returns the only forward transition allowed from s.
func (s Status) Next() (Status, error) {
	switch s {
	case StatusPending:
		return StatusProxied, nil
	case StatusProxied:
		return StatusRouted, nil
	}
	return "", fmt.Errorf("no forward transition from status %q", s)
}

// Deposit is one tracked deposit address and its lifecycle state.
//
// Salt is globally unique; Address follows from Salt given a fixed deployer
// and init code hash, and is defensively unique-constrained as well. Rows are
// never deleted.
type Deposit struct {
	ID          int64          `json:"id"`
	User        common.Address `json:"user"`
	Salt        []byte         `json:"-"`
	Address     common.Address `json:"address"`
	Status      Status         `json:"status"`
	RouteTxHash string         `json:"route_tx_hash,omitempty"`
	LastError   string         `json:"last_error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// SaltHex returns the salt as a 0x-prefixed hex string.
func (d *Deposit) SaltHex() string {
	return "0x" + common.Bytes2Hex(d.Salt)
}

// Filter narrows a deposit listing. All fields are optional and composable.
type Filter struct {
	User     *common.Address
	Salt     []byte
	Address  *common.Address
	Statuses []Status
	Limit    int
	Offset   int
}
