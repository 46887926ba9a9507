package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/akyairhashvil/talk/internal/util"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	defaultDBTimeout = 5 * time.Second
	schemaVersion    = 1

	// sqlite's busy handler does not watch the context, so a locked file
	// can hold a call this long past its deadline.
	busyTimeout = time.Second
)

// Options selects the driver and data source. For sqlite3 the DSN is a file path.
type Options struct {
	Driver string
	DSN    string
}

// Database is the embedded store shared by the mood, resource and music
// repositories. Writes to each table are serialized by their own mutex.
type Database struct {
	DB     *sqlx.DB
	driver string
	dbFile string

	moodMu     sync.Mutex
	resourceMu sync.Mutex
	musicMu    sync.Mutex
}

var (
	sharedMu sync.Mutex
	shared   *Database
)

// Shared returns the process-wide store, opening it on first use. Later
// calls ignore opts and return the same handle until CloseShared.
func Shared(ctx context.Context, opts Options) (*Database, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared != nil {
		return shared, nil
	}
	db, err := Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	shared = db
	return shared, nil
}

// CloseShared closes the process-wide store. The next Shared call opens a
// fresh one.
func CloseShared() error {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		return nil
	}
	err := shared.Close()
	shared = nil
	return err
}

// Open connects to the store and applies the schema.
func Open(ctx context.Context, opts Options) (*Database, error) {
	driver := opts.Driver
	if driver == "" {
		driver = config.DriverSQLite
	}
	dsn := opts.DSN
	d := &Database{driver: driver}

	switch driver {
	case config.DriverSQLite:
		if dsn == "" {
			return nil, wrapErr(EntityStore, "open", 0, fmt.Errorf("%w: empty database path", ErrStorageUnavailable))
		}
		d.dbFile = dsn
		if dir := filepath.Dir(dsn); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, wrapErr(EntityStore, "open", 0, unavailable{err})
			}
		}
		if !strings.Contains(dsn, "?") {
			dsn += fmt.Sprintf("?_foreign_keys=on&_busy_timeout=%d", busyTimeout.Milliseconds())
		}
	case config.DriverPostgres:
	default:
		return nil, wrapErr(EntityStore, "open", 0, fmt.Errorf("%w: unsupported driver %q", ErrStorageUnavailable, driver))
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, wrapErr(EntityStore, "open", 0, unavailable{err})
	}
	if driver == config.DriverSQLite {
		// One writer connection keeps sqlite from returning SQLITE_BUSY
		// under concurrent callers.
		db.SetMaxOpenConns(1)
	}
	d.DB = db

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, wrapErr(EntityStore, "ping", 0, unavailable{err})
	}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, wrapErr(EntityStore, "create schema", 0, err)
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, wrapErr(EntityStore, "migrate", 0, err)
	}
	util.Logger.Debugw("store opened", "driver", driver, "file", d.dbFile)
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Driver reports the configured driver name.
func (d *Database) Driver() string { return d.driver }

func (d *Database) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultDBTimeout)
}

// WithTx runs fn inside a transaction, committing on nil and rolling back otherwise.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := d.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			util.LogError("rollback failed", rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (d *Database) createTables(ctx context.Context) error {
	for _, query := range schemaFor(d.driver) {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("%w: %q", err, firstLine(query))
		}
	}
	return nil
}

// migrate records the schema version. There is a single version so far;
// later versions append their steps after the version check.
func (d *Database) migrate(ctx context.Context) error {
	var version int
	err := d.DB.GetContext(ctx, &version, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err != nil {
		return err
	}
	if version >= schemaVersion {
		return nil
	}
	_, err = d.DB.ExecContext(ctx, d.DB.Rebind("INSERT INTO schema_version (version) VALUES (?)"), schemaVersion)
	return err
}

func schemaFor(driver string) []string {
	if driver == config.DriverPostgres {
		return []string{
			`CREATE TABLE IF NOT EXISTS moods (
				id SERIAL PRIMARY KEY,
				seq BIGINT NOT NULL UNIQUE,
				mood INTEGER NOT NULL CHECK (mood BETWEEN 1 AND 6),
				intensity INTEGER NOT NULL CHECK (intensity BETWEEN 1 AND 6),
				created_at TIMESTAMP NOT NULL
			);`,
			`CREATE TABLE IF NOT EXISTS resources (
				id SERIAL PRIMARY KEY,
				title TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				link TEXT NOT NULL DEFAULT '',
				mood INTEGER NOT NULL CHECK (mood BETWEEN 1 AND 6),
				UNIQUE (title, mood)
			);`,
			`CREATE TABLE IF NOT EXISTS music (
				id SERIAL PRIMARY KEY,
				title TEXT NOT NULL,
				artist TEXT NOT NULL DEFAULT '',
				link TEXT NOT NULL DEFAULT '',
				mood INTEGER NOT NULL CHECK (mood BETWEEN 1 AND 6),
				UNIQUE (title, mood)
			);`,
			`CREATE TABLE IF NOT EXISTS settings (
				key TEXT PRIMARY KEY,
				value TEXT
			);`,
			`CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER NOT NULL
			);`,
		}
	}
	return []string{
		`CREATE TABLE IF NOT EXISTS moods (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seq INTEGER NOT NULL UNIQUE,
			mood INTEGER NOT NULL CHECK (mood BETWEEN 1 AND 6),
			intensity INTEGER NOT NULL CHECK (intensity BETWEEN 1 AND 6),
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS resources (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			mood INTEGER NOT NULL CHECK (mood BETWEEN 1 AND 6),
			UNIQUE (title, mood)
		);`,
		`CREATE TABLE IF NOT EXISTS music (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			artist TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			mood INTEGER NOT NULL CHECK (mood BETWEEN 1 AND 6),
			UNIQUE (title, mood)
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		);`,
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
