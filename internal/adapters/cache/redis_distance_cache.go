package cache

import (
	"context"
	"errors"
	"fmt"
	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/platform/obs"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "haversine:v2:"

// RedisDistanceCache is a Redis-backed cache for reference->candidate distances.
//
// Keys hold the exact coordinates and the clamp mode of the provider that
// computed the value, so clamped and unclamped servers never share entries.
type RedisDistanceCache struct {
	Client  *redis.Client
	TTL     time.Duration
	Clamped bool
}

func NewRedisDistanceCache(client *redis.Client, ttl time.Duration, clamped bool) *RedisDistanceCache {
	return &RedisDistanceCache{Client: client, TTL: ttl, Clamped: clamped}
}

func (s *RedisDistanceCache) key(ref, cand domain.Coordinates) string {
	return cacheKey(s.Clamped, ref, cand)
}

func cacheKey(clamped bool, ref, cand domain.Coordinates) string {
	mode := "p"
	if clamped {
		mode = "c"
	}
	return fmt.Sprintf("%s%s:%s,%s|%s,%s", keyPrefix, mode,
		formatDeg(ref.Lon), formatDeg(ref.Lat), formatDeg(cand.Lon), formatDeg(cand.Lat))
}

func formatDeg(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Fetch cached distances for one reference point and multiple candidates.
func (s *RedisDistanceCache) GetMany(
	ctx context.Context,
	ref domain.Coordinates,
	candidates []domain.Coordinates,
) (_ map[domain.Coordinates]float64, err error) {
	defer obs.Time(ctx, "distance.cache.GetMany")(&err)

	if s.Client == nil {
		return nil, errors.New("distance cache: redis client is nil")
	}

	if len(candidates) == 0 {
		return map[domain.Coordinates]float64{}, nil
	}

	seen := make(map[domain.Coordinates]struct{}, len(candidates))
	uniq := make([]domain.Coordinates, 0, len(candidates))
	keys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		uniq = append(uniq, c)
		keys = append(keys, s.key(ref, c))
	}

	vals, err := s.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get distance cache: mget %d keys: %w", len(keys), err)
	}

	out := make(map[domain.Coordinates]float64, len(uniq))
	for i, v := range vals {
		// MGET reports missing keys as nil.
		str, ok := v.(string)
		if !ok {
			continue
		}
		km, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return nil, fmt.Errorf("get distance cache: parse value for key %q: %w", keys[i], err)
		}
		out[uniq[i]] = km
	}

	return out, nil
}

// Store many distance results for a single reference point. Non-finite values
// are skipped.
func (s *RedisDistanceCache) PutMany(
	ctx context.Context,
	ref domain.Coordinates,
	results map[domain.Coordinates]float64,
) (err error) {
	defer obs.Time(ctx, "distance.cache.PutMany")(&err)

	if s.Client == nil {
		return errors.New("distance cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := s.Client.TxPipeline()
	queued := 0
	for c, km := range results {
		if math.IsNaN(km) || math.IsInf(km, 0) {
			continue
		}
		pipe.Set(ctx, s.key(ref, c), strconv.FormatFloat(km, 'g', -1, 64), s.TTL)
		queued++
	}

	if queued == 0 {
		return nil
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert distance cache: exec pipeline of %d: %w", queued, err)
	}

	return nil
}
