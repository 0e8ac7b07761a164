package catalog

import (
	"context"
	"encoding/json"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const cacheSize = 10 * 1024 * 1024 // 10 MB

var cacheKeyAll = []byte("exercises-all")

type listRepo interface {
	List(ctx context.Context) ([]Exercise, error)
}

// CachedRepo serves the exercise catalog from an in-memory cache. The
// catalog changes only via migrations, so a short TTL is plenty.
type CachedRepo struct {
	repo       listRepo
	cache      *freecache.Cache
	ttlSeconds int
}

func NewCachedRepo(repo listRepo, ttlSeconds int) *CachedRepo {
	return &CachedRepo{
		repo:       repo,
		cache:      freecache.NewCache(cacheSize),
		ttlSeconds: ttlSeconds,
	}
}

func (c *CachedRepo) List(ctx context.Context) ([]Exercise, error) {
	if data, err := c.cache.Get(cacheKeyAll); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(data, &exercises); err == nil {
			return exercises, nil
		}
		log.Warnf("exercise catalog cache, unmarshal cached entry: %s", err)
	}

	exercises, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(exercises); err == nil {
		if err := c.cache.Set(cacheKeyAll, data, c.ttlSeconds); err != nil {
			log.Warnf("exercise catalog cache, set entry: %s", err)
		}
	}

	return exercises, nil
}

func (c *CachedRepo) Invalidate() {
	c.cache.Del(cacheKeyAll)
}
