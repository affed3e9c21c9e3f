package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	driver string
	path   string
}

func (c testConfig) Driver() string   { return c.driver }
func (c testConfig) Path() string     { return c.path }
func (c testConfig) Host() string     { return "" }
func (c testConfig) Username() string { return "" }
func (c testConfig) Password() string { return "" }
func (c testConfig) Database() string { return "" }

func openBackends(t *testing.T) map[string]Storage {
	t.Helper()

	sqliteStore, err := New(testConfig{driver: DriverSQLite, path: filepath.Join(t.TempDir(), "ledger.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	memStore, err := New(testConfig{driver: DriverMemory})
	require.NoError(t, err)

	return map[string]Storage{
		DriverMemory: memStore,
		DriverSQLite: sqliteStore,
	}
}

func Test_OnRead_ShouldReturnNilForAbsentCollection(t *testing.T) {
	for name, s := range openBackends(t) {
		payload, err := s.Read(context.Background(), Expenses)

		assert.NoError(t, err, name)
		assert.Nil(t, payload, name)
	}
}

func Test_OnWrite_ShouldReplaceWholeCollection(t *testing.T) {
	ctx := context.Background()
	for name, s := range openBackends(t) {
		require.NoError(t, s.Write(ctx, Budgets, []byte(`{"c1":10}`)), name)
		require.NoError(t, s.Write(ctx, Budgets, []byte(`{"c2":5}`)), name)

		payload, err := s.Read(ctx, Budgets)
		require.NoError(t, err, name)
		assert.JSONEq(t, `{"c2":5}`, string(payload), name)

		other, err := s.Read(ctx, Categories)
		require.NoError(t, err, name)
		assert.Nil(t, other, name)
	}
}

func Test_OnSQLiteReopen_ShouldKeepCollections(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig{driver: DriverSQLite, path: filepath.Join(t.TempDir(), "nested", "ledger.db")}

	s, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, Expenses, []byte(`[]`)))
	require.NoError(t, s.Close())

	s, err = New(cfg)
	require.NoError(t, err)
	defer s.Close()

	payload, err := s.Read(ctx, Expenses)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(payload))
}

func Test_OnNew_ShouldRejectUnknownDriver(t *testing.T) {
	_, err := New(testConfig{driver: "mongo"})

	assert.Error(t, err)
}

func Test_InMemStorage_ShouldCopyPayloads(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	payload := []byte(`[1]`)

	require.NoError(t, s.Write(ctx, Expenses, payload))
	payload[1] = '2'

	got, err := s.Read(ctx, Expenses)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
}
