package config

import "time"

// Reminder timing.
const (
	// DefaultReminderDelay is how long after a save (or launch) the next
	// mood prompt fires.
	DefaultReminderDelay = 2 * time.Second
	MinReminderDelay     = time.Second
)

// Tabs.
const (
	TabMoodLog = iota
	TabResources
	TabMusic
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Settings keys.
const (
	SettingLaunchedBefore = "launched_before"
	SettingReminderDelay  = "reminder_delay"
	SettingTheme          = "theme"
)

// Database/application settings.
const (
	AppName      = "talk"
	DBFileName   = "talk.db"
	LogFileName  = "talk.log"
	EnvPrefix    = "TALK"
	DefaultLevel = "info"
)
