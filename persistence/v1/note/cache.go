package note

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/noteapp/sys"
)

func itemKey(id uint64, gen int64) string {
	return fmt.Sprintf(noteKey, id, gen)
}

func listKey(gen int64) string {
	return fmt.Sprintf(notesKey, gen)
}

// generation returns the current cache generation. Cached values are keyed by the generation read
// before their rows were queried, and every write moves it forward.
// It reports false when caching is disabled or redis fails.
func generation(ctx context.Context) (int64, bool) {
	cache := sys.R.Cache
	if cache == nil {
		return 0, false
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	gen, err := cache.Get(tcCtx, genKey).Int64()
	switch {
	case err == redis.Nil:
		return 0, true
	case err != nil:
		sys.R.Log.Errorw("failure to get cache generation", "key", genKey, "ERROR", err)
		return 0, false
	}
	return gen, true
}

// fromCache fills dst from the cached value at key. It reports false on a miss or on any cache failure.
func fromCache(ctx context.Context, key string, dst any) bool {
	cache := sys.R.Cache
	if cache == nil {
		return false
	}
	logger := sys.R.Log

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Errorw("failure to get from cache", "key", key, "ERROR", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(get), dst); err != nil {
		logger.Errorw("error parsing cached value", "key", key, "ERROR", err)
		return false
	}
	return true
}

func toCache(ctx context.Context, key string, v any) {
	cache := sys.R.Cache
	if cache == nil {
		return
	}
	logger := sys.R.Log

	data, err := json.Marshal(v)
	if err != nil {
		logger.Errorw("error parsing data to cache", "key", key, "ERROR", err)
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Set(tcCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
		logger.Errorw("failure to set into cache", "key", key, "ERROR", err)
	}
}

// invalidate moves the cache generation forward. Values of older generations expire with their TTL.
func invalidate(ctx context.Context) {
	cache := sys.R.Cache
	if cache == nil {
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Incr(tcCtx, genKey).Err(); err != nil {
		sys.R.Log.Errorw("failure to invalidate cache", "key", genKey, "ERROR", err)
	}
}
