package tui

import (
	"context"

	"github.com/akyairhashvil/talk/internal/models"
)

// Store defines the persistence methods the TUI requires.
type Store interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error

	RecordMood(ctx context.Context, mood models.Mood, intensity int) (int64, error)
	GetAllMoods(ctx context.Context) ([]models.MoodEntry, error)
	LatestMood(ctx context.Context) (models.MoodEntry, bool, error)

	GetAllResources(ctx context.Context) ([]models.ResourceItem, error)
	GetResourcesByMood(ctx context.Context, mood models.Mood) ([]models.ResourceItem, error)
	GetAllMusic(ctx context.Context) ([]models.MusicItem, error)
	GetMusicByMood(ctx context.Context, mood models.Mood) ([]models.MusicItem, error)
}
