package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/akyairhashvil/talk/internal/models"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, Options{Driver: config.DriverSQLite, DSN: dbPath})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, Options{DSN: db.dbFile})
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	defer again.Close()

	var rows int
	if err := again.DB.GetContext(ctx, &rows, "SELECT COUNT(1) FROM schema_version"); err != nil {
		t.Fatalf("count schema_version failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected one schema_version row, got %d", rows)
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "talk.db")
	db, err := Open(ctx, Options{DSN: dbPath})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	if db.Driver() != config.DriverSQLite {
		t.Fatalf("expected default sqlite driver, got %q", db.Driver())
	}
}

func TestOpen_Failures(t *testing.T) {
	ctx := context.Background()
	if _, err := Open(ctx, Options{Driver: "mysql", DSN: "x"}); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable for unknown driver, got %v", err)
	}
	if _, err := Open(ctx, Options{}); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable for empty path, got %v", err)
	}
	dir := t.TempDir()
	// A directory cannot be opened as a database file.
	if _, err := Open(ctx, Options{DSN: dir}); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable for directory path, got %v", err)
	}
}

func TestSharedReturnsSameHandle(t *testing.T) {
	ctx := context.Background()
	opts := Options{DSN: filepath.Join(t.TempDir(), "shared.db")}
	first, err := Shared(ctx, opts)
	if err != nil {
		t.Fatalf("Shared failed: %v", err)
	}
	t.Cleanup(func() { _ = CloseShared() })
	second, err := Shared(ctx, Options{DSN: filepath.Join(t.TempDir(), "other.db")})
	if err != nil {
		t.Fatalf("Shared second call failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected Shared to return the same handle")
	}

	if err := CloseShared(); err != nil {
		t.Fatalf("CloseShared failed: %v", err)
	}
	reopened, err := Shared(ctx, opts)
	if err != nil {
		t.Fatalf("Shared after close failed: %v", err)
	}
	if reopened == first {
		t.Fatalf("expected a fresh handle after CloseShared")
	}
	if _, err := reopened.GetAllMoods(ctx); err != nil {
		t.Fatalf("GetAllMoods on reopened handle failed: %v", err)
	}
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, ok, err := db.GetSetting(ctx, config.SettingLaunchedBefore); err != nil || ok {
		t.Fatalf("expected unset setting, got ok=%v err=%v", ok, err)
	}
	if err := db.SetSetting(ctx, config.SettingLaunchedBefore, "true"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, config.SettingLaunchedBefore, "yes"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	value, ok, err := db.GetSetting(ctx, config.SettingLaunchedBefore)
	if err != nil || !ok || value != "yes" {
		t.Fatalf("expected overwritten value, got %q (%v, %v)", value, ok, err)
	}
	if err := db.DeleteSetting(ctx, config.SettingLaunchedBefore); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}
	if _, ok, err := db.GetSetting(ctx, config.SettingLaunchedBefore); err != nil || ok {
		t.Fatalf("expected setting removed, got ok=%v err=%v", ok, err)
	}
}

func TestGetSettingReportsStorageFailure(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.SetSetting(ctx, config.SettingLaunchedBefore, "true"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	_, ok, err := db.GetSetting(ctx, config.SettingLaunchedBefore)
	if ok {
		t.Fatalf("expected no value from a closed store")
	}
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Entity != EntitySetting {
		t.Fatalf("expected setting OpError, got %#v", err)
	}
}

func TestClosedStoreReportsUnavailable(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	_, err := db.RecordMood(ctx, 2, 3)
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Entity != EntityMood {
		t.Fatalf("expected mood OpError, got %#v", err)
	}
	if _, err := db.GetAllResources(ctx); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable on read, got %v", err)
	}
}

func TestLockedStoreHonorsDeadline(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	other, err := sql.Open(config.DriverSQLite, db.dbFile)
	if err != nil {
		t.Fatalf("open second connection failed: %v", err)
	}
	defer other.Close()
	conn, err := other.Conn(ctx)
	if err != nil {
		t.Fatalf("Conn failed: %v", err)
	}
	defer conn.Close()
	if _, err := conn.ExecContext(ctx, "BEGIN EXCLUSIVE"); err != nil {
		t.Fatalf("BEGIN EXCLUSIVE failed: %v", err)
	}
	defer func() { _, _ = conn.ExecContext(ctx, "ROLLBACK") }()

	callCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err = db.RecordMood(callCtx, models.MoodHappy, 3)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if limit := busyTimeout + 2*time.Second; elapsed > limit {
		t.Fatalf("insert on locked store took %v, want under %v", elapsed, limit)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"postgres unique violation", &pq.Error{Code: "23505"}, ErrConstraintViolation},
		{"postgres check violation", &pq.Error{Code: "23514"}, ErrConstraintViolation},
		{"postgres connection failure", &pq.Error{Code: "08006"}, ErrStorageUnavailable},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, ErrConstraintViolation},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ErrStorageUnavailable},
		{"deadline", context.DeadlineExceeded, ErrStorageUnavailable},
		{"cancelled", context.Canceled, ErrStorageUnavailable},
		{"not found", ErrNotFound, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			if !errors.Is(got, tt.want) {
				t.Fatalf("classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Fatalf("classify(%v) lost the underlying error", tt.err)
			}
		})
	}
}

func TestPostgresSchema(t *testing.T) {
	stmts := schemaFor(config.DriverPostgres)
	ddl := strings.Join(stmts, "\n")
	for _, want := range []string{
		"id SERIAL PRIMARY KEY",
		"UNIQUE (title, mood)",
		"CHECK (intensity BETWEEN 1 AND 6)",
		"CREATE TABLE IF NOT EXISTS settings",
	} {
		if !strings.Contains(ddl, want) {
			t.Fatalf("postgres schema missing %q", want)
		}
	}
	if strings.Contains(ddl, "AUTOINCREMENT") {
		t.Fatalf("postgres schema uses sqlite-only AUTOINCREMENT")
	}
}
