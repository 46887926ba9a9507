package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/talk/internal/util"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration loaded from TALK_* environment
// variables and an optional .env file.
type Config struct {
	DataDir       string
	DBDriver      string
	DBDSN         string
	ReminderDelay time.Duration
	LogLevel      string
}

// Load reads configuration. envFile may be empty; a missing file is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("data_dir", util.DataDir(AppName))
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("db_dsn", "")
	v.SetDefault("reminder_delay", DefaultReminderDelay.String())
	v.SetDefault("log_level", DefaultLevel)

	cfg := Config{
		DataDir:  strings.TrimSpace(v.GetString("data_dir")),
		DBDriver: strings.ToLower(strings.TrimSpace(v.GetString("db_driver"))),
		DBDSN:    strings.TrimSpace(v.GetString("db_dsn")),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
	}

	delay, err := time.ParseDuration(strings.TrimSpace(v.GetString("reminder_delay")))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s_REMINDER_DELAY: %w", EnvPrefix, err)
	}
	cfg.ReminderDelay = ClampReminderDelay(delay)

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBDSN == "" {
			cfg.DBDSN = filepath.Join(cfg.DataDir, DBFileName)
		}
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return Config{}, fmt.Errorf("%s_DB_DSN is required for the postgres driver", EnvPrefix)
		}
	default:
		return Config{}, fmt.Errorf("unsupported %s_DB_DRIVER %q", EnvPrefix, cfg.DBDriver)
	}
	return cfg, nil
}

// ClampReminderDelay keeps the reminder from firing in a tight loop.
func ClampReminderDelay(d time.Duration) time.Duration {
	if d < MinReminderDelay {
		return MinReminderDelay
	}
	return d
}

// LogPath is where the rotating log file lives.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, LogFileName)
}
