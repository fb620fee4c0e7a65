// Package lease provides a Redis-backed lease so only one payouts process
// pays from an account at a time.
package lease

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	lost    = 0
	renewed = 1
	taken   = 2
)

var acquireScript = redis.NewScript(`
local owner = redis.call("GET", KEYS[1])
if owner == ARGV[1] then
	redis.call("PEXPIRE", KEYS[1], ARGV[2])
	return 1
end
if not owner then
	redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
	return 2
end
return 0
`)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lease on a single key. The owner token is unique per process.
type Redis struct {
	client redis.Scripter
	key    string
	owner  string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedis builds a lease on key for account. ttl must exceed the longest
// expected payment cycle plus the polling interval.
func NewRedis(client redis.Scripter, account string, ttl time.Duration, logger *zap.Logger) (*Redis, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if account == "" {
		return nil, errors.New("lease account is required")
	}
	if ttl < time.Millisecond {
		return nil, fmt.Errorf("lease ttl %s is too short", ttl)
	}
	owner := uuid.NewString()
	return &Redis{
		client: client,
		key:    "payouts7000:lease:" + account,
		owner:  owner,
		ttl:    ttl,
		logger: logger.Named("lease").With(zap.String("owner", owner)),
	}, nil
}

// Acquire takes or renews the lease. fresh is true when the lease was not
// held by this process immediately before the call.
func (l *Redis) Acquire(ctx context.Context) (held bool, fresh bool, err error) {
	res, err := acquireScript.Run(ctx, l.client, []string{l.key}, l.owner, l.ttl.Milliseconds()).Int()
	if err != nil {
		return false, false, fmt.Errorf("run acquire script: %w", err)
	}
	switch res {
	case taken:
		l.logger.Info("lease taken", zap.String("key", l.key))
		return true, true, nil
	case renewed:
		return true, false, nil
	case lost:
		return false, false, nil
	default:
		return false, false, fmt.Errorf("unexpected acquire result %d", res)
	}
}

// Release drops the lease if this process still owns it.
func (l *Redis) Release(ctx context.Context) error {
	res, err := releaseScript.Run(ctx, l.client, []string{l.key}, l.owner).Int()
	if err != nil {
		return fmt.Errorf("run release script: %w", err)
	}
	if res == 0 {
		l.logger.Debug("lease not owned on release", zap.String("key", l.key))
	}
	return nil
}
