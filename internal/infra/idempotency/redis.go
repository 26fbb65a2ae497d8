package idempotency

import (
	"context"
	"errors"
	"strings"
	"time"

	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 24 * time.Hour

// RedisStore keeps one value per key: "pending:<hash>" while the request runs,
// then "done:<hash>:<order id>".
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

var _ commands.IdempotencyStore = (*RedisStore)(nil)

func (s *RedisStore) Key(scope, key string) string {
	return "idem:checkout:" + scope + ":" + key
}

func (s *RedisStore) Begin(ctx context.Context, scope, key, requestHash string) (commands.IdempotencyClaim, error) {
	k := s.Key(scope, key)
	// a second pass covers the key expiring between SETNX and GET
	for range 2 {
		ok, err := s.rdb.SetNX(ctx, k, pendingValue(requestHash), s.ttl).Result()
		if err != nil {
			return commands.IdempotencyClaim{}, errs.Wrap(err, "redis setnx failed")
		}
		if ok {
			return commands.IdempotencyClaim{State: commands.ClaimAcquired}, nil
		}

		raw, err := s.rdb.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return commands.IdempotencyClaim{}, errs.Wrap(err, "redis get failed")
		}
		return decode(raw, requestHash)
	}
	return commands.IdempotencyClaim{}, commands.ErrIdempotencyInFlight
}

func (s *RedisStore) Complete(ctx context.Context, scope, key, requestHash string, orderID uuid.UUID) error {
	if err := s.rdb.Set(ctx, s.Key(scope, key), doneValue(requestHash, orderID), s.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set failed")
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, scope, key string) error {
	if err := s.rdb.Del(ctx, s.Key(scope, key)).Err(); err != nil {
		return errs.Wrap(err, "redis delete failed")
	}
	return nil
}

func pendingValue(hash string) string {
	return "pending:" + hash
}

func doneValue(hash string, orderID uuid.UUID) string {
	return "done:" + hash + ":" + orderID.String()
}

func decode(raw, requestHash string) (commands.IdempotencyClaim, error) {
	state, rest, _ := strings.Cut(raw, ":")
	switch state {
	case "pending":
		if rest != requestHash {
			return commands.IdempotencyClaim{}, commands.ErrIdempotencyMismatch
		}
		return commands.IdempotencyClaim{}, commands.ErrIdempotencyInFlight
	case "done":
		hash, id, _ := strings.Cut(rest, ":")
		if hash != requestHash {
			return commands.IdempotencyClaim{}, commands.ErrIdempotencyMismatch
		}
		orderID, err := uuid.Parse(id)
		if err != nil {
			return commands.IdempotencyClaim{}, errs.Wrapf(err, "corrupt idempotency record %q", raw)
		}
		return commands.IdempotencyClaim{State: commands.ClaimCompleted, OrderID: orderID}, nil
	default:
		return commands.IdempotencyClaim{}, errs.Newf("corrupt idempotency record %q", raw)
	}
}
