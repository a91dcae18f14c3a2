package cache

import (
	"context"
	"time"

	"hvac_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	lockKeyPrefix  = "hvac:lock:"
	DefaultLockTTL = 30 * time.Second
)

// releaseLockScript deletes the key only while it still holds our token, so an expired
// lock re-acquired by another caller is left alone.
var releaseLockScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisApprovalLock is an approval lock shared by every replica of the service.
type RedisApprovalLock struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

var _ interfaces.IApprovalLock = (*RedisApprovalLock)(nil)

func NewRedisApprovalLock(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisApprovalLock {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisApprovalLock{client: client, ttl: ttl, log: logger.Named("lock")}
}

func (l *RedisApprovalLock) TryLock(ctx context.Context, key string) (func(context.Context), bool, error) {
	k := lockKeyPrefix + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, k, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) {
		if err := releaseLockScript.Run(ctx, l.client, []string{k}, token).Err(); err != nil {
			l.log.Warn("release approval lock failed", zap.String("key", k), zap.Error(err))
		}
	}
	return release, true, nil
}
