package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnParseEmptyConfig_ShouldApplyDefaults(t *testing.T) {
	s, err := Parse([]byte(``))

	require.NoError(t, err)
	assert.Equal(t, "sqlite", s.Storage().Driver())
	assert.Equal(t, "data/ledger.db", s.Storage().Path())
	assert.Equal(t, 10, s.App().TopDescriptions())
	assert.Equal(t, 5, s.App().RecentExpenses())
	assert.False(t, s.App().AsyncReports())
	assert.Equal(t, "ledger-reports", s.Kafka().ReportsTopic())
	assert.Equal(t, ":8080", s.Metrics().Addr())
	assert.Equal(t, "expense-ledger", s.Tracing().ServiceName())
	assert.Empty(t, s.Memcached().Hosts())
}

func Test_OnParse_ShouldReadAllSections(t *testing.T) {
	s, err := Parse([]byte(`
storage:
  driver: postgres
  host: db:5432
  db: ledger
  username: ledger
  password: secret
app:
  top-descriptions: 3
  async-reports: true
telegram:
  token: abc
  owner-id: 42
kafka:
  brokers: [kafka:9092]
memcached:
  hosts: [memcached:11211]
`))

	require.NoError(t, err)
	assert.Equal(t, "postgres", s.Storage().Driver())
	assert.Equal(t, "db:5432", s.Storage().Host())
	assert.Equal(t, "secret", s.Storage().Password())
	assert.Equal(t, 3, s.App().TopDescriptions())
	assert.True(t, s.App().AsyncReports())
	assert.Equal(t, "abc", s.Telegram().Token())
	assert.Equal(t, int64(42), s.Telegram().OwnerID())
	assert.Equal(t, []string{"kafka:9092"}, s.Kafka().Brokers())
	assert.Equal(t, []string{"memcached:11211"}, s.Memcached().Hosts())
}

func Test_OnParseUnknownDriver_ShouldFail(t *testing.T) {
	_, err := Parse([]byte("storage:\n  driver: mongo\n"))

	assert.Error(t, err)
}

func Test_OnParseAsyncReportsWithoutBrokers_ShouldFail(t *testing.T) {
	_, err := Parse([]byte("app:\n  async-reports: true\n"))

	assert.Error(t, err)
}

func Test_OnNew_ShouldReadFileFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: memory\n"), 0o600))
	t.Setenv(configFileEnv, path)

	s, err := New()

	require.NoError(t, err)
	assert.Equal(t, "memory", s.Storage().Driver())
}
