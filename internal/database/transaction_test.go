package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
)

func TestMigrateIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", "tx", "rollback"); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	if err == nil {
		t.Fatalf("expected error from WithTx")
	}

	var count int
	if err := db.DB.GetContext(ctx, &count, "SELECT COUNT(1) FROM settings WHERE key = ?", "tx"); err != nil {
		t.Fatalf("query count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to remove setting, got count %d", count)
	}
}
