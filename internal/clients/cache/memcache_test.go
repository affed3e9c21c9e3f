package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/clients/cache/mock"
)

// newMapBackedClient serves memcached commands from a map.
func newMapBackedClient(t *testing.T) *mock.MemcacheClientMock {
	var mu sync.Mutex
	items := map[string][]byte{}

	client := mock.NewMemcacheClientMock(t)
	client.GetMock.Set(func(key string) (*memcache.Item, error) {
		mu.Lock()
		defer mu.Unlock()
		v, ok := items[key]
		if !ok {
			return nil, memcache.ErrCacheMiss
		}
		return &memcache.Item{Key: key, Value: v}, nil
	})
	client.SetMock.Set(func(item *memcache.Item) error {
		mu.Lock()
		defer mu.Unlock()
		items[item.Key] = item.Value
		return nil
	})
	client.AddMock.Set(func(item *memcache.Item) error {
		mu.Lock()
		defer mu.Unlock()
		if _, ok := items[item.Key]; ok {
			return memcache.ErrNotStored
		}
		items[item.Key] = item.Value
		return nil
	})
	client.IncrementMock.Set(func(key string, delta uint64) (uint64, error) {
		mu.Lock()
		defer mu.Unlock()
		v, ok := items[key]
		if !ok {
			return 0, memcache.ErrCacheMiss
		}
		n, err := strconv.ParseUint(string(v), 10, 64)
		if err != nil {
			return 0, err
		}
		n += delta
		items[key] = []byte(strconv.FormatUint(n, 10))
		return n, nil
	})
	return client
}

func Test_OnCacheMiss_ShouldReturnCurrentGeneration(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewMemcacheClientMock(m)
	client.GetMock.
		When(generationKey).Then(&memcache.Item{Value: []byte("7")}, nil).
		GetMock.
		When("ledger:7:dashboard").Then(nil, memcache.ErrCacheMiss)

	payload, gen, err := newMemcacheClient(client).GetReport("dashboard")

	require.NoError(t, err)
	assert.Nil(t, payload)
	assert.Equal(t, uint64(7), gen)
}

func Test_OnCacheReport_ShouldUseGivenGenerationAndExpire(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewMemcacheClientMock(m)
	client.SetMock.
		Expect(&memcache.Item{Key: "ledger:3:budgets", Value: []byte(`{}`), Expiration: reportExpiration}).
		Return(nil)

	err := newMemcacheClient(client).CacheReport(3, "budgets", []byte(`{}`))

	assert.NoError(t, err)
}

func Test_OnInvalidateDuringBuild_ShouldNotServeStaleReport(t *testing.T) {
	mc := newMemcacheClient(newMapBackedClient(t))

	payload, gen, err := mc.GetReport("dashboard")
	require.NoError(t, err)
	require.Nil(t, payload)

	require.NoError(t, mc.Invalidate())
	require.NoError(t, mc.CacheReport(gen, "dashboard", []byte(`{"totalSpent":10}`)))

	payload, _, err = mc.GetReport("dashboard")
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func Test_OnCacheReportWithoutInvalidation_ShouldServeIt(t *testing.T) {
	mc := newMemcacheClient(newMapBackedClient(t))

	_, gen, err := mc.GetReport("analytics:recent")
	require.NoError(t, err)
	require.NoError(t, mc.CacheReport(gen, "analytics:recent", []byte(`{"total":1}`)))

	payload, _, err := mc.GetReport("analytics:recent")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"total":1}`), payload)
}

func Test_OnRepeatedInvalidate_ShouldBumpGeneration(t *testing.T) {
	mc := newMemcacheClient(newMapBackedClient(t))

	require.NoError(t, mc.Invalidate())
	require.NoError(t, mc.Invalidate())

	_, gen, err := mc.GetReport("dashboard")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), gen)
}
