package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// DataDir holds the journal database and log: $XDG_DATA_HOME/<app>, or
// ~/.local/share/<app>.
func DataDir(app string) string {
	return filepath.Join(xdgBase("XDG_DATA_HOME", ".local", "share"), app)
}

// ReportsDir is where PDF reports land when no path is given.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), app, "reports")
}

// DocumentsDir resolves the user's documents folder from the environment,
// then user-dirs.dirs, then ~/Documents.
func DocumentsDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return dir
	}
	home := homeDir()
	if dir := userDir(home, "XDG_DOCUMENTS_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(home, "Documents")
}

func xdgBase(env string, fallback ...string) string {
	if base := strings.TrimSpace(os.Getenv(env)); base != "" {
		return base
	}
	return filepath.Join(append([]string{homeDir()}, fallback...)...)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

// userDir reads key from user-dirs.dirs, whose lines are shell assignments
// like XDG_DOCUMENTS_DIR="$HOME/Documents". HOME is seeded first so the
// parser can expand it.
func userDir(home, key string) string {
	path := filepath.Join(xdgBase("XDG_CONFIG_HOME", ".config"), "user-dirs.dirs")
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	vars, err := godotenv.Unmarshal(fmt.Sprintf("HOME=%q\n%s", home, raw))
	if err != nil {
		Logger.Debugw("skipping unreadable user-dirs file", "path", path, "error", err)
		return ""
	}
	return strings.TrimSpace(vars[key])
}
