// Package derive computes deposit salts and deterministic proxy addresses.
//
// Every function here is pure and must stay bit-exact with the on-chain
// deployer: Salt mirrors keccak256(abi.encodePacked(requestSalt, msg.sender))
// and ProxyAddress mirrors the CREATE2 address formula. The init code hash is
// fixed for the lifetime of a deployer instance; repointing the proxy
// implementation invalidates every predicted-but-undeployed address, so the
// configured hash is cross-checked against the chain before any activation.
package derive

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// SaltSize is the byte length of request salts and derived salts.
const SaltSize = 32

// ErrInvalidLength is returned when an input is not the exact expected size.
var ErrInvalidLength = errors.New("invalid input length")

// Salt derives the on-chain consumed salt from a caller-supplied request salt
// and the identity that will submit the deployment transaction.
//
// Distinct request salts yield distinct salts, and the same request salt under
// two different callers yields two different salts.
func Salt(requestSalt [SaltSize]byte, caller common.Address) [SaltSize]byte {
	var out [SaltSize]byte
	copy(out[:], crypto.Keccak256(requestSalt[:], caller.Bytes()))
	return out
}

// ProxyAddress predicts the CREATE2 address the deployer will produce for the
// given salt: the low 20 bytes of
// keccak256(0xff ++ deployer ++ salt ++ initCodeHash).
func ProxyAddress(salt [SaltSize]byte, deployer common.Address, initCodeHash common.Hash) common.Address {
	return crypto.CreateAddress2(deployer, salt, initCodeHash.Bytes())
}

// SaltFromBytes validates and converts a raw 32-byte salt.
func SaltFromBytes(b []byte) ([SaltSize]byte, error) {
	var salt [SaltSize]byte
	if len(b) != SaltSize {
		return salt, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrInvalidLength, SaltSize, len(b))
	}
	copy(salt[:], b)
	return salt, nil
}

// SaltFromHex parses a 0x-prefixed or bare hex string into a 32-byte salt.
func SaltFromHex(s string) ([SaltSize]byte, error) {
	return SaltFromBytes(common.FromHex(s))
}

// HashFromHex parses a 32-byte hash, rejecting any other length.
func HashFromHex(s string) (common.Hash, error) {
	b := common.FromHex(s)
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w: hash must be %d bytes, got %d",
			ErrInvalidLength, common.HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}

// AddressFromHex parses a 20-byte account identifier, rejecting any other
// length instead of silently truncating like common.HexToAddress.
func AddressFromHex(s string) (common.Address, error) {
	b := common.FromHex(s)
	if len(b) != common.AddressLength {
		return common.Address{}, fmt.Errorf("%w: address must be %d bytes, got %d",
			ErrInvalidLength, common.AddressLength, len(b))
	}
	return common.BytesToAddress(b), nil
}
