// Package storage keeps the ledger collections as whole JSON documents.
// Every write replaces a collection entirely; there are no partial updates.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collection string

const (
	Expenses   Collection = "expenses"
	Categories Collection = "categories"
	Budgets    Collection = "budgets"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Storage interface {
	// Read returns nil when the collection was never written.
	Read(ctx context.Context, c Collection) ([]byte, error)
	Write(ctx context.Context, c Collection, payload []byte) error
	Close() error
}

type config interface {
	sqlConfig
	Driver() string
}

// New opens the storage backend selected by the configured driver.
func New(cfg config) (Storage, error) {
	switch cfg.Driver() {
	case DriverMemory:
		return NewInMemStorage(), nil
	case DriverSQLite, DriverPostgres:
		return NewSQLStorage(cfg.Driver(), cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver())
	}
}

var histogramOperationTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "ledger",
		Subsystem: "storage",
		Name:      "operation_duration_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	},
	[]string{"collection", "operation"},
)

func observeOperation(c Collection, op string, start time.Time) {
	histogramOperationTime.
		WithLabelValues(string(c), op).
		Observe(time.Since(start).Seconds())
}
