package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TALK_DATA_DIR", "TALK_DB_DRIVER", "TALK_DB_DSN", "TALK_REMINDER_DELAY", "TALK_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("TALK_DATA_DIR", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBDriver != DriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.DBDriver)
	}
	if cfg.DBDSN != filepath.Join(dir, DBFileName) {
		t.Fatalf("unexpected dsn %q", cfg.DBDSN)
	}
	if cfg.ReminderDelay != DefaultReminderDelay {
		t.Fatalf("unexpected reminder delay %v", cfg.ReminderDelay)
	}
	if cfg.LogPath() != filepath.Join(dir, LogFileName) {
		t.Fatalf("unexpected log path %q", cfg.LogPath())
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "TALK_DATA_DIR=" + dir + "\nTALK_REMINDER_DELAY=90s\nTALK_LOG_LEVEL=DEBUG\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(envPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ReminderDelay != 90*time.Second {
		t.Fatalf("expected 90s delay, got %v", cfg.ReminderDelay)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.LogLevel)
	}
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("TALK_DATA_DIR", t.TempDir())
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("TALK_DATA_DIR", t.TempDir())

	t.Setenv("TALK_DB_DRIVER", "mysql")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}

	t.Setenv("TALK_DB_DRIVER", "postgres")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for postgres without dsn")
	}

	t.Setenv("TALK_DB_DRIVER", "")
	t.Setenv("TALK_REMINDER_DELAY", "soon")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for bad reminder delay")
	}
}

func TestClampReminderDelay(t *testing.T) {
	if got := ClampReminderDelay(0); got != MinReminderDelay {
		t.Fatalf("expected clamp to %v, got %v", MinReminderDelay, got)
	}
	if got := ClampReminderDelay(time.Minute); got != time.Minute {
		t.Fatalf("expected 1m unchanged, got %v", got)
	}
}
