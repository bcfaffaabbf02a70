// Package permission caches the on-chain allowlist checks the router enforces.
// The cache is advisory: the contract re-checks both bits on every
// transferFunds, so a stale answer here can only cost a revert, never move
// funds to a disallowed treasury.
package permission

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Reader exposes the two permission bits of the router storage contract
type Reader interface {
	IsAllowedCaller(ctx context.Context, addr common.Address) (bool, error)
	IsAllowedTreasury(ctx context.Context, addr common.Address) (bool, error)
}

type kind uint8

const (
	kindCaller kind = iota
	kindTreasury
)

type cacheKey struct {
	addr common.Address
	kind kind
}

type entry struct {
	allowed   bool
	expiresAt time.Time
}

// Gate is a TTL cache in front of a Reader
type Gate struct {
	reader Reader
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu    sync.Mutex
	cache map[cacheKey]entry
}

// NewGate creates a gate caching reader answers for ttl
func NewGate(reader Reader, ttl time.Duration, logger *zap.Logger) *Gate {
	return &Gate{
		reader: reader,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
		cache:  make(map[cacheKey]entry),
	}
}

// AllowedCaller reports whether addr may invoke transferFunds
func (g *Gate) AllowedCaller(ctx context.Context, addr common.Address) (bool, error) {
	return g.lookup(ctx, cacheKey{addr: addr, kind: kindCaller}, g.reader.IsAllowedCaller)
}

// AllowedTreasury reports whether addr may receive routed funds
func (g *Gate) AllowedTreasury(ctx context.Context, addr common.Address) (bool, error) {
	return g.lookup(ctx, cacheKey{addr: addr, kind: kindTreasury}, g.reader.IsAllowedTreasury)
}

// Invalidate drops all cached answers, forcing fresh chain reads
func (g *Gate) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cache = make(map[cacheKey]entry)
}

func (g *Gate) lookup(
	ctx context.Context,
	key cacheKey,
	read func(context.Context, common.Address) (bool, error),
) (bool, error) {
	g.mu.Lock()
	cached, ok := g.cache[key]
	g.mu.Unlock()
	if ok && g.now().Before(cached.expiresAt) {
		return cached.allowed, nil
	}

	allowed, err := read(ctx, key.addr)
	if err != nil {
		return false, err
	}

	g.mu.Lock()
	g.cache[key] = entry{allowed: allowed, expiresAt: g.now().Add(g.ttl)}
	g.mu.Unlock()

	if !allowed {
		g.logger.Warn("Address not on allowlist",
			zap.String("address", key.addr.Hex()),
			zap.Bool("treasury_check", key.kind == kindTreasury))
	}
	return allowed, nil
}
