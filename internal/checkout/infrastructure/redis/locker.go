package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL      = 30 * time.Second
	defaultPollInterval = 25 * time.Millisecond
	unlockTimeLimit     = 2 * time.Second
)

// Deletes the key only while it still holds our token.
const unlockScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

// Locker is a lease lock shared by every checkout replica. A holder that dies
// releases its keys once the TTL expires.
type Locker struct {
	client       client
	ttl          time.Duration
	pollInterval time.Duration
	logger       logging.Logger
}

func NewLocker(client client, ttl time.Duration, logger logging.Logger) *Locker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	return &Locker{
		client:       client,
		ttl:          ttl,
		pollInterval: defaultPollInterval,
		logger:       logger,
	}
}

func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}

		if acquired {
			return func() { l.unlock(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *Locker) unlock(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), unlockTimeLimit)
	defer cancel()

	if err := l.client.Eval(ctx, unlockScript, []string{key}, token).Err(); err != nil {
		l.logger.Error("failed to release lock", "key", key, "error", err.Error())
	}
}

// NewClient connects to the redis server at url, e.g. redis://localhost:6379/0.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}
