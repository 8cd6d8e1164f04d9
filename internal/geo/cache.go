package geo

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedGeocoder wraps a Geocoder with a redis cache keyed by the
// normalized address. Cache failures degrade to a direct lookup; they are
// never surfaced to the caller.
type CachedGeocoder struct {
	inner Geocoder
	rdb   *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedGeocoder(
	inner Geocoder,
	rdb *redis.Client,
	ttl time.Duration,
	log *zap.Logger,
) *CachedGeocoder {
	return &CachedGeocoder{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		log:   log,
	}
}

func cacheKey(address string) string {
	return "geocode:" + strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func (g *CachedGeocoder) Resolve(ctx context.Context, address string) (*Location, error) {
	key := cacheKey(address)

	if raw, err := g.rdb.Get(ctx, key).Result(); err == nil {
		var loc Location
		if err := json.Unmarshal([]byte(raw), &loc); err == nil {
			return &loc, nil
		}
	} else if err != redis.Nil {
		g.log.Warn("geocode cache read failed", zap.Error(err))
	}

	loc, err := g.inner.Resolve(ctx, address)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(loc); err == nil {
		if err := g.rdb.Set(ctx, key, raw, g.ttl).Err(); err != nil {
			g.log.Warn("geocode cache write failed", zap.Error(err))
		}
	}

	return loc, nil
}
