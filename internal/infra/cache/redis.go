package cache

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"commerce-core/internal/pkg/errs"
	"commerce-core/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 15 * time.Minute
	// TombstoneTTL outlives any read that loaded the cart before it was deleted.
	TombstoneTTL = time.Minute
)

// Entries are hashes of {version, view}. A tombstone carries the maximum
// version and an empty view, so no fill can overwrite it until it expires.
const (
	fieldVersion = "version"
	fieldView    = "view"
)

var tombstoneVersion = strconv.FormatInt(math.MaxInt64, 10)

// setIfNewer stores the view only when the held version is older.
var setIfNewer = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'version')
if cur and tonumber(cur) >= tonumber(ARGV[1]) then
  return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'view', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

type RedisCartCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisCartCache(client *redis.Client, ttl time.Duration) *RedisCartCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCartCache{
		client:  client,
		baseTTL: ttl,
	}
}

var _ queries.CartCache = (*RedisCartCache)(nil)

func (r *RedisCartCache) Get(ctx context.Context, ownerKey string) (*queries.CartView, error) {
	data, err := r.client.HGet(ctx, cacheKey(ownerKey), fieldView).Bytes()
	if errors.Is(err, redis.Nil) || (err == nil && len(data) == 0) {
		return nil, queries.ErrCacheMiss
	}
	if err != nil {
		return nil, errs.Wrap(err, "redis get failed")
	}

	var view queries.CartView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, errs.Wrap(err, "unmarshal cart view failed")
	}
	return &view, nil
}

// Set keeps whichever of the held and the offered view has the higher cart
// version. Expirations spread over an extra fifth of the base TTL.
func (r *RedisCartCache) Set(ctx context.Context, ownerKey string, view *queries.CartView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return errs.Wrap(err, "marshal cart view failed")
	}
	jitter := time.Duration(rand.Int64N(int64(r.baseTTL)/5 + 1))
	ttl := r.baseTTL + jitter

	err = setIfNewer.Run(ctx, r.client, []string{cacheKey(ownerKey)},
		view.Version, data, ttl.Milliseconds()).Err()
	if err != nil {
		return errs.Wrap(err, "redis set failed")
	}
	return nil
}

// Delete drops the views of carts that no longer exist.
func (r *RedisCartCache) Delete(ctx context.Context, ownerKeys ...string) error {
	if len(ownerKeys) == 0 {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range ownerKeys {
			key := cacheKey(k)
			pipe.HSet(ctx, key, fieldVersion, tombstoneVersion, fieldView, "")
			pipe.Expire(ctx, key, TombstoneTTL)
		}
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "redis delete failed")
	}
	return nil
}

func cacheKey(ownerKey string) string {
	return "cart:" + ownerKey
}
