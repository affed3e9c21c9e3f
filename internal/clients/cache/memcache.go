package cache

import (
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
)

const (
	keyPrefix     = "ledger:"
	generationKey = keyPrefix + "generation"
	defaultBase   = 10

	// views of the clock month go stale at month end even without writes
	reportExpiration = int32(time.Hour / time.Second)
)

type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Add(item *memcache.Item) error
	Increment(key string, delta uint64) (uint64, error)
}

// MemcacheClient stores rendered reports under keys prefixed with a
// generation number. Invalidation bumps the generation, so every report
// cached before it becomes unreachable at once.
type MemcacheClient struct {
	client memcacheClient
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func newMemcacheClient(client memcacheClient) *MemcacheClient {
	return &MemcacheClient{client: client}
}

func (mc *MemcacheClient) generation() (uint64, error) {
	item, err := mc.client.Get(generationKey)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(string(item.Value), defaultBase, 64)
}

func formatKey(gen uint64, key string) string {
	return keyPrefix + strconv.FormatUint(gen, defaultBase) + ":" + key
}

// GetReport returns the cached payload and the generation it was looked up
// in. A miss is a nil payload with a nil error. The generation must be
// passed back to CacheReport so that a report built from data older than
// a concurrent invalidation is never stored as current.
func (mc *MemcacheClient) GetReport(key string) ([]byte, uint64, error) {
	gen, err := mc.generation()
	if err != nil {
		return nil, 0, errors.Wrap(err, "get report")
	}
	item, err := mc.client.Get(formatKey(gen, key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, gen, nil
	}
	if err != nil {
		return nil, 0, errors.Wrap(err, "get report")
	}
	logger.Debug("report served from cache", zap.String("key", key), zap.Uint64("generation", gen))
	return item.Value, gen, nil
}

func (mc *MemcacheClient) CacheReport(gen uint64, key string, payload []byte) error {
	logger.Debug("cache report", zap.String("key", key), zap.Uint64("generation", gen))
	err := mc.client.Set(&memcache.Item{
		Key:        formatKey(gen, key),
		Value:      payload,
		Expiration: reportExpiration,
	})
	return errors.Wrap(err, "cache report")
}

func (mc *MemcacheClient) Invalidate() error {
	gen, err := mc.client.Increment(generationKey, 1)
	if errors.Is(err, memcache.ErrCacheMiss) {
		gen = 1
		err = mc.client.Add(&memcache.Item{Key: generationKey, Value: []byte("1")})
		if errors.Is(err, memcache.ErrNotStored) {
			gen, err = mc.client.Increment(generationKey, 1)
		}
	}
	if err != nil {
		return errors.Wrap(err, "invalidate cache")
	}
	logger.Info("report cache invalidated", zap.Uint64("generation", gen))
	return nil
}
