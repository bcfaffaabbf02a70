package derive

import (
	"crypto/rand"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func randomSalt(t *testing.T) [SaltSize]byte {
	t.Helper()
	var s [SaltSize]byte
	_, err := rand.Read(s[:])
	require.NoError(t, err)
	return s
}

func TestSalt_MatchesOnChainEncoding(t *testing.T) {
	req := randomSalt(t)
	caller := common.HexToAddress("0x00000000000000000000000000000000deadbeef")

	got := Salt(req, caller)

	// keccak256(abi.encodePacked(bytes32, address)) is keccak over the raw
	// 52-byte concatenation.
	packed := append(append([]byte{}, req[:]...), caller.Bytes()...)
	require.Equal(t, crypto.Keccak256(packed), got[:])
}

func TestSalt_Deterministic(t *testing.T) {
	req := randomSalt(t)
	caller := common.HexToAddress("0x1111111111111111111111111111111111111111")

	require.Equal(t, Salt(req, caller), Salt(req, caller))
}

func TestSalt_DistinctRequestSaltsNoCollision(t *testing.T) {
	caller := common.HexToAddress("0x2222222222222222222222222222222222222222")

	seen := make(map[[SaltSize]byte]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		salt := Salt(randomSalt(t), caller)
		_, dup := seen[salt]
		require.False(t, dup, "salt collision after %d derivations", i)
		seen[salt] = struct{}{}
	}
}

func TestSalt_DifferentCallersDiverge(t *testing.T) {
	req := randomSalt(t)
	a := common.HexToAddress("0x3333333333333333333333333333333333333333")
	b := common.HexToAddress("0x4444444444444444444444444444444444444444")

	saltA := Salt(req, a)
	saltB := Salt(req, b)
	require.NotEqual(t, saltA, saltB)

	deployer := common.HexToAddress("0x5555555555555555555555555555555555555555")
	initCodeHash := crypto.Keccak256Hash([]byte("proxy-init-code"))
	require.NotEqual(t,
		ProxyAddress(saltA, deployer, initCodeHash),
		ProxyAddress(saltB, deployer, initCodeHash))
}

// EIP-1014 example 5: deployer 0x00000000000000000000000000000000deadbeef,
// salt 0x...cafebabe, init code 0xdeadbeef.
func TestProxyAddress_EIP1014Vector(t *testing.T) {
	deployer := common.HexToAddress("0x00000000000000000000000000000000deadbeef")
	salt, err := SaltFromHex("0x00000000000000000000000000000000000000000000000000000000cafebabe")
	require.NoError(t, err)
	initCodeHash := crypto.Keccak256Hash(common.FromHex("0xdeadbeef"))

	got := ProxyAddress(salt, deployer, initCodeHash)
	require.Equal(t, common.HexToAddress("0x60f3f640a8508fC6a86d45DF051962668E1e8AC7"), got)
}

func TestProxyAddress_Deterministic(t *testing.T) {
	salt := randomSalt(t)
	deployer := common.HexToAddress("0x6666666666666666666666666666666666666666")
	initCodeHash := crypto.Keccak256Hash([]byte("init"))

	require.Equal(t,
		ProxyAddress(salt, deployer, initCodeHash),
		ProxyAddress(salt, deployer, initCodeHash))
}

func TestProxyAddress_InitCodeHashChangesAddress(t *testing.T) {
	salt := randomSalt(t)
	deployer := common.HexToAddress("0x7777777777777777777777777777777777777777")

	require.NotEqual(t,
		ProxyAddress(salt, deployer, crypto.Keccak256Hash([]byte("impl-v1"))),
		ProxyAddress(salt, deployer, crypto.Keccak256Hash([]byte("impl-v2"))))
}

func TestSaltFromBytes_RejectsWrongLength(t *testing.T) {
	_, err := SaltFromBytes(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = SaltFromBytes(make([]byte, 33))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestHashFromHex(t *testing.T) {
	want := crypto.Keccak256Hash([]byte("init"))
	got, err := HashFromHex(want.Hex())
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = HashFromHex("0x1234")
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestAddressFromHex(t *testing.T) {
	addr, err := AddressFromHex("0x00000000000000000000000000000000deadbeef")
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0x00000000000000000000000000000000deadbeef"), addr)

	_, err = AddressFromHex("0xdeadbeef")
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = AddressFromHex("")
	require.ErrorIs(t, err, ErrInvalidLength)
}
