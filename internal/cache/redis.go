package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Replay markers outlive the provider's redelivery window by a wide margin.
	replayExpiry = 72 * time.Hour
	replayPrefix = "coolpay:cb:"
)

// ReplayCache keeps an advisory record of callback deliveries in Redis: the
// raw payload for diagnostics and a SETNX marker that flags redeliveries. The
// order's own status in MySQL remains the source of truth for idempotency; a
// cold or absent Redis only loses the advisory signal.
type ReplayCache struct {
	client *redis.Client
}

// NewReplayCache connects to Redis. An empty addr returns nil, which every
// method treats as a disabled cache.
func NewReplayCache(addr, password string, db int) *ReplayCache {
	if addr == "" {
		return nil
	}
	return &ReplayCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// MarkDelivery stores the raw payload under the transaction ref and reports
// whether this ref was already seen.
func (r *ReplayCache) MarkDelivery(ctx context.Context, transactionRef string, payload []byte) (seen bool, err error) {
	if r == nil || r.client == nil {
		return false, nil
	}
	set, err := r.client.SetNX(ctx, replayPrefix+transactionRef, string(payload), replayExpiry).Result()
	if err != nil {
		return false, err
	}
	return !set, nil
}
