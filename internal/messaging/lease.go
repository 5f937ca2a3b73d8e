package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Leaser grants exclusive, expiring ownership of a consumed message so two
// workers never process the same delivery at once.
type Leaser interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Renew(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// LeaseKey returns the lease key of one partition offset.
func LeaseKey(topic string, partition int, offset int64) string {
	return fmt.Sprintf("orderflow:lease:%s:%d:%d", topic, partition, offset)
}

var renewLeaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

var releaseLeaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLeaser stores leases as Redis keys whose value is the owner token of
// this process. Renew and release only touch keys this process owns.
type RedisLeaser struct {
	rdb   *redis.Client
	owner string
}

// NewRedisLeaser creates a RedisLeaser with a fresh owner token.
func NewRedisLeaser(rdb *redis.Client) *RedisLeaser {
	return &RedisLeaser{rdb: rdb, owner: uuid.NewString()}
}

// Acquire sets key with SET NX PX. It returns false when another owner holds it.
func (l *RedisLeaser) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, key, l.owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lease %s: %w", key, err)
	}
	return ok, nil
}

// Renew extends key by ttl if this process still owns it.
func (l *RedisLeaser) Renew(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	res, err := renewLeaseScript.Run(ctx, l.rdb, []string{key}, l.owner, ttl.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to renew lease %s: %w", key, err)
	}
	return res == 1, nil
}

// Release deletes key if this process still owns it.
func (l *RedisLeaser) Release(ctx context.Context, key string) error {
	if err := releaseLeaseScript.Run(ctx, l.rdb, []string{key}, l.owner).Err(); err != nil {
		return fmt.Errorf("failed to release lease %s: %w", key, err)
	}
	return nil
}

// NoopLeaser always grants the lease. Used when Redis is not configured.
type NoopLeaser struct{}

// NewNoopLeaser creates a NoopLeaser.
func NewNoopLeaser() *NoopLeaser {
	return &NoopLeaser{}
}

func (NoopLeaser) Acquire(context.Context, string, time.Duration) (bool, error) { return true, nil }

func (NoopLeaser) Renew(context.Context, string, time.Duration) (bool, error) { return true, nil }

func (NoopLeaser) Release(context.Context, string) error { return nil }

// leaseKeeper renews one lease every ttl/2 until stopped or maxRenewal elapses.
type leaseKeeper struct {
	leaser Leaser
	key    string
	logger *slog.Logger

	stopOnce sync.Once
	done     chan struct{}
	stopped  chan struct{}
}

func startLeaseKeeper(
	ctx context.Context,
	leaser Leaser,
	key string,
	ttl, maxRenewal time.Duration,
	logger *slog.Logger,
) *leaseKeeper {
	k := &leaseKeeper{
		leaser:  leaser,
		key:     key,
		logger:  logger,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go k.run(ctx, ttl, maxRenewal)
	return k
}

func (k *leaseKeeper) run(ctx context.Context, ttl, maxRenewal time.Duration) {
	defer close(k.stopped)

	interval := ttl / 2
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	deadline := time.NewTimer(maxRenewal)
	defer deadline.Stop()

	for {
		select {
		case <-k.done:
			return
		case <-ctx.Done():
			return
		case <-deadline.C:
			if k.logger != nil {
				k.logger.Warn("lease renewal limit reached", slog.String("lease", k.key))
			}
			return
		case <-ticker.C:
			ok, err := k.leaser.Renew(ctx, k.key, ttl)
			if err != nil || !ok {
				if k.logger != nil {
					k.logger.Warn("lease renewal failed",
						slog.String("lease", k.key),
						slog.Bool("owned", ok),
						slog.Any("error", err),
					)
				}
				return
			}
		}
	}
}

// stop halts renewal and releases the lease. Safe to call more than once.
func (k *leaseKeeper) stop(ctx context.Context) error {
	var err error
	k.stopOnce.Do(func() {
		close(k.done)
		<-k.stopped
		err = k.leaser.Release(ctx, k.key)
	})
	return err
}
