package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Redis key prefix for in-flight syncs
	syncLockKeyPrefix = "sync:lock:"

	// Safety net: a crashed instance must not wedge its identities forever.
	defaultTTL = 30 * time.Second
)

// Redis is a Locker shared across service instances. Uses SET NX with a
// TTL; release deletes the key only if this holder still owns it.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisOption configures a Redis locker.
type RedisOption func(*Redis)

// WithTTL overrides the lock expiry.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	l := &Redis{client: client, ttl: defaultTTL}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// releaseScript deletes the lock key only when the stored owner matches,
// so a holder whose lock expired cannot release a successor's lock.
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

func (r *Redis) Acquire(ctx context.Context, key string) (func(), error) {
	owner := uuid.NewString()
	full := syncLockKeyPrefix + key

	ok, err := r.client.SetNX(ctx, full, owner, r.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBusy
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, r.client, []string{full}, owner).Err()
	}, nil
}
