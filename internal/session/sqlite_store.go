package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"logistica/internal/session/migration"
	custom_error "logistica/pkg/errors"
	"logistica/pkg/models"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const kvTable = "kv_store"

// SQLiteStore keeps the session in a key/value table of an on-device SQLite
// database.
type SQLiteStore struct {
	db   *sql.DB
	goqu *goqu.Database
	log  *zap.Logger
}

func OpenSQLiteStore(dir string, log *zap.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, &custom_error.StorageError{Op: "open", Err: err}
	}

	dsn := filepath.Join(dir, "logistica.db") + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &custom_error.StorageError{Op: "open", Err: err}
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, &custom_error.StorageError{Op: "open", Err: fmt.Errorf("ping sqlite db: %w", err)}
	}

	if err := migration.Migrate(db, log); err != nil {
		_ = db.Close()
		return nil, &custom_error.StorageError{Op: "open", Err: fmt.Errorf("run migrations: %w", err)}
	}

	return &SQLiteStore{
		db:   db,
		goqu: goqu.New("sqlite3", db),
		log:  log,
	}, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return &custom_error.StorageError{Op: "save", Err: err}
	}

	query := s.goqu.Insert(kvTable).
		Rows(goqu.Record{
			"key":   Key,
			"value": string(payload),
		}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{"value": goqu.I("excluded.value")}))

	if _, err := query.Executor().ExecContext(ctx); err != nil {
		return &custom_error.StorageError{Op: "save", Err: fmt.Errorf("failed to upsert session: %w", err)}
	}

	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*models.Session, bool) {
	var value string
	found, err := s.goqu.From(kvTable).
		Select("value").
		Where(goqu.Ex{"key": Key}).
		Executor().
		ScanValContext(ctx, &value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn("Unable to read session row", zap.Error(err))
		}
		return nil, false
	}
	if !found {
		return nil, false
	}

	return decode([]byte(value), s.log)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	query := s.goqu.Delete(kvTable).Where(goqu.Ex{"key": Key})

	if _, err := query.Executor().ExecContext(ctx); err != nil {
		return &custom_error.StorageError{Op: "clear", Err: fmt.Errorf("failed to delete session: %w", err)}
	}

	return nil
}
