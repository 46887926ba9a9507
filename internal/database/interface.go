package database

import (
	"context"

	"github.com/akyairhashvil/talk/internal/models"
)

// MoodRepository is the append-only mood log.
type MoodRepository interface {
	InsertMood(ctx context.Context, entry models.MoodEntry) (int64, error)
	RecordMood(ctx context.Context, mood models.Mood, intensity int) (int64, error)
	GetAllMoods(ctx context.Context) ([]models.MoodEntry, error)
	LatestMood(ctx context.Context) (models.MoodEntry, bool, error)
}

// ResourceRepository holds the coping resource catalog.
type ResourceRepository interface {
	InsertResource(ctx context.Context, item models.ResourceItem) error
	InsertResources(ctx context.Context, items ...models.ResourceItem) (int, error)
	GetAllResources(ctx context.Context) ([]models.ResourceItem, error)
	GetResourcesByMood(ctx context.Context, mood models.Mood) ([]models.ResourceItem, error)
	DeleteResource(ctx context.Context, item models.ResourceItem) error
}

// MusicRepository holds the song suggestion catalog.
type MusicRepository interface {
	InsertMusic(ctx context.Context, item models.MusicItem) error
	InsertSongs(ctx context.Context, items ...models.MusicItem) (int, error)
	GetAllMusic(ctx context.Context) ([]models.MusicItem, error)
	GetMusicByMood(ctx context.Context, mood models.Mood) ([]models.MusicItem, error)
	DeleteMusic(ctx context.Context, item models.MusicItem) error
}

// SettingsRepository stores small key/value flags.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/akyairhashvil/talk/internal/database Repository
type Repository interface {
	MoodRepository
	ResourceRepository
	MusicRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
