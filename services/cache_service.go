package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"vdeck_server/structs"
	"vdeck_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

const (
	productListKey   = "products:all"
	productKeyPrefix = "products:id:"
)

// ProductCache is the read-through cache contract the product service uses.
// Cache failures never fail a request; callers fall back to the store.
type ProductCache interface {
	GetProductList() ([]tables.Product, error)
	SetProductList(products []tables.Product) error
	GetProductByID(id string) (*tables.Product, error)
	SetProductByID(product *tables.Product) error
	Invalidate(ids ...string) error
}

// CacheService provides Redis caching with connection pooling and retry logic
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(cfg),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient(cfg *structs.Config) *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			// Connection pool settings
			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			// Timeouts
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			// Retry settings
			MaxRetries:      cfg.Cache.MaxRetries,
			MinRetryBackoff: cfg.Cache.MinRetryBackoff,
			MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// Health pings the cache
func (cs *CacheService) Health() error {
	ctx, cancel := context.WithTimeout(redisCtx, 2*time.Second)
	defer cancel()
	return cs.client.Ping(ctx).Err()
}

func (cs *CacheService) GetProductList() ([]tables.Product, error) {
	payload, err := cs.client.Get(redisCtx, productListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var products []tables.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		// Corrupt entry: drop it so the next write repopulates
		cs.client.Del(redisCtx, productListKey)
		return nil, err
	}
	return products, nil
}

func (cs *CacheService) SetProductList(products []tables.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return cs.client.Set(redisCtx, productListKey, payload, cs.config.Cache.ProductListTTL).Err()
}

func (cs *CacheService) GetProductByID(id string) (*tables.Product, error) {
	payload, err := cs.client.Get(redisCtx, productKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var product tables.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		cs.client.Del(redisCtx, productKeyPrefix+id)
		return nil, err
	}
	return &product, nil
}

func (cs *CacheService) SetProductByID(product *tables.Product) error {
	payload, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return cs.client.Set(redisCtx, productKeyPrefix+product.ID.String(), payload, cs.config.Cache.ProductTTL).Err()
}

// Invalidate drops the cached product list and any given per-id entries.
// Called after catalog writes so reads never serve deleted or stale rows.
func (cs *CacheService) Invalidate(ids ...string) error {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, productListKey)
	for _, id := range ids {
		keys = append(keys, productKeyPrefix+id)
	}

	if err := cs.client.Del(redisCtx, keys...).Err(); err != nil {
		cs.logger.Warn("Failed to invalidate product cache", gecho.Field("error", err))
		return err
	}
	return nil
}
