package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"

	// postgres driver
	_ "github.com/lib/pq"
	// sqlite driver
	_ "modernc.org/sqlite"
)

const (
	collectionsTable  = "collections"
	postgresDSN       = "user=%s password=%s host=%s dbname=%s sslmode=disable"
	sqliteDSNTemplate = "%s?_pragma=busy_timeout(5000)"
	upsertSuffix      = "ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at"
)

type sqlConfig interface {
	Path() string
	Host() string
	Username() string
	Password() string
	Database() string
}

// SQLStorage keeps one row per collection in sqlite or postgres.
type SQLStorage struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

func NewSQLStorage(driver string, cfg sqlConfig) (*SQLStorage, error) {
	dsn, builder, err := dialect(driver, cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open database")
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot connect to database")
	}

	if err = runMigrations(driver, dsn); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("storage ready", zap.String("driver", driver))
	return &SQLStorage{db: db, builder: builder}, nil
}

func dialect(driver string, cfg sqlConfig) (string, sq.StatementBuilderType, error) {
	switch driver {
	case DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Path()), 0o750); err != nil {
			return "", sq.StatementBuilder, errors.Wrap(err, "create database directory")
		}
		return fmt.Sprintf(sqliteDSNTemplate, cfg.Path()), sq.StatementBuilder.PlaceholderFormat(sq.Question), nil
	case DriverPostgres:
		dsn := fmt.Sprintf(postgresDSN, cfg.Username(), cfg.Password(), cfg.Host(), cfg.Database())
		return dsn, sq.StatementBuilder.PlaceholderFormat(sq.Dollar), nil
	default:
		return "", sq.StatementBuilder, fmt.Errorf("driver %q is not an sql driver", driver)
	}
}

func (s *SQLStorage) Read(ctx context.Context, c Collection) ([]byte, error) {
	defer observeOperation(c, "read", time.Now())

	query := s.builder.Select("payload").
		From(collectionsTable).
		Where(sq.Eq{"name": string(c)})

	var payload string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", c)
	}
	return []byte(payload), nil
}

// Write replaces the collection in a single upsert statement.
func (s *SQLStorage) Write(ctx context.Context, c Collection, payload []byte) error {
	defer observeOperation(c, "write", time.Now())

	query := s.builder.Insert(collectionsTable).
		Columns("name", "payload", "updated_at").
		Values(string(c), string(payload), time.Now().UTC()).
		Suffix(upsertSuffix)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrapf(err, "write %s", c)
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}
