package permission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockReader struct {
	isAllowedCallerFunc   func(ctx context.Context, addr common.Address) (bool, error)
	isAllowedTreasuryFunc func(ctx context.Context, addr common.Address) (bool, error)
	callerCalls           int
	treasuryCalls         int
}

func (m *mockReader) IsAllowedCaller(ctx context.Context, addr common.Address) (bool, error) {
	m.callerCalls++
	return m.isAllowedCallerFunc(ctx, addr)
}

func (m *mockReader) IsAllowedTreasury(ctx context.Context, addr common.Address) (bool, error) {
	m.treasuryCalls++
	return m.isAllowedTreasuryFunc(ctx, addr)
}

func TestGate_CachesWithinTTL(t *testing.T) {
	reader := &mockReader{
		isAllowedCallerFunc: func(context.Context, common.Address) (bool, error) {
			return true, nil
		},
	}
	gate := NewGate(reader, 30*time.Second, zap.NewNop())

	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	for i := 0; i < 5; i++ {
		allowed, err := gate.AllowedCaller(context.Background(), addr)
		require.NoError(t, err)
		require.True(t, allowed)
	}
	require.Equal(t, 1, reader.callerCalls)
}

func TestGate_ExpiresAfterTTL(t *testing.T) {
	reader := &mockReader{
		isAllowedCallerFunc: func(context.Context, common.Address) (bool, error) {
			return true, nil
		},
	}
	gate := NewGate(reader, 30*time.Second, zap.NewNop())

	current := time.Unix(1_700_000_000, 0)
	gate.now = func() time.Time { return current }

	addr := common.HexToAddress("0x2222222222222222222222222222222222222222")

	_, err := gate.AllowedCaller(context.Background(), addr)
	require.NoError(t, err)
	require.Equal(t, 1, reader.callerCalls)

	current = current.Add(29 * time.Second)
	_, err = gate.AllowedCaller(context.Background(), addr)
	require.NoError(t, err)
	require.Equal(t, 1, reader.callerCalls)

	current = current.Add(2 * time.Second)
	_, err = gate.AllowedCaller(context.Background(), addr)
	require.NoError(t, err)
	require.Equal(t, 2, reader.callerCalls)
}

func TestGate_NegativeAnswersCachedToo(t *testing.T) {
	reader := &mockReader{
		isAllowedTreasuryFunc: func(context.Context, common.Address) (bool, error) {
			return false, nil
		},
	}
	gate := NewGate(reader, time.Minute, zap.NewNop())

	addr := common.HexToAddress("0x3333333333333333333333333333333333333333")
	for i := 0; i < 3; i++ {
		allowed, err := gate.AllowedTreasury(context.Background(), addr)
		require.NoError(t, err)
		require.False(t, allowed)
	}
	require.Equal(t, 1, reader.treasuryCalls)
}

func TestGate_CallerAndTreasuryCachedSeparately(t *testing.T) {
	reader := &mockReader{
		isAllowedCallerFunc: func(context.Context, common.Address) (bool, error) {
			return true, nil
		},
		isAllowedTreasuryFunc: func(context.Context, common.Address) (bool, error) {
			return false, nil
		},
	}
	gate := NewGate(reader, time.Minute, zap.NewNop())

	addr := common.HexToAddress("0x4444444444444444444444444444444444444444")

	asCaller, err := gate.AllowedCaller(context.Background(), addr)
	require.NoError(t, err)
	require.True(t, asCaller)

	asTreasury, err := gate.AllowedTreasury(context.Background(), addr)
	require.NoError(t, err)
	require.False(t, asTreasury)

	require.Equal(t, 1, reader.callerCalls)
	require.Equal(t, 1, reader.treasuryCalls)
}

func TestGate_ErrorsAreNotCached(t *testing.T) {
	readErr := errors.New("rpc down")
	reader := &mockReader{
		isAllowedCallerFunc: func(context.Context, common.Address) (bool, error) {
			return false, readErr
		},
	}
	gate := NewGate(reader, time.Minute, zap.NewNop())

	addr := common.HexToAddress("0x5555555555555555555555555555555555555555")

	_, err := gate.AllowedCaller(context.Background(), addr)
	require.ErrorIs(t, err, readErr)
	_, err = gate.AllowedCaller(context.Background(), addr)
	require.ErrorIs(t, err, readErr)
	require.Equal(t, 2, reader.callerCalls)
}

func TestGate_Invalidate(t *testing.T) {
	reader := &mockReader{
		isAllowedCallerFunc: func(context.Context, common.Address) (bool, error) {
			return true, nil
		},
	}
	gate := NewGate(reader, time.Hour, zap.NewNop())

	addr := common.HexToAddress("0x6666666666666666666666666666666666666666")

	_, err := gate.AllowedCaller(context.Background(), addr)
	require.NoError(t, err)

	gate.Invalidate()

	_, err = gate.AllowedCaller(context.Background(), addr)
	require.NoError(t, err)
	require.Equal(t, 2, reader.callerCalls)
}
