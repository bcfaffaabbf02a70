package ethereum

import (
	"errors"
	"fmt"
)

// ErrChainUnavailable marks failures where the RPC endpoint could not serve
// the request at all, as opposed to a revert from a contract.
var ErrChainUnavailable = errors.New("chain unavailable")

// IsUnavailable reports whether err indicates the chain cannot be reached.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrChainUnavailable)
}

// RevertError is a decoded custom error from a contract revert. The name is
// surfaced verbatim so callers can persist and match on it.
type RevertError struct {
	Name string
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("execution reverted: %s()", e.Name)
}
