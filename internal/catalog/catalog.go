// Package catalog holds the bundled coping resources and song suggestions
// and seeds them into the store on first launch.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/akyairhashvil/talk/internal/config"
	"github.com/akyairhashvil/talk/internal/models"
	"github.com/akyairhashvil/talk/internal/util"
)

var (
	//go:embed data/resources.json
	resourcesJSON []byte

	//go:embed data/music.json
	musicJSON []byte
)

// Resources decodes the bundled resource list.
func Resources() ([]models.ResourceItem, error) {
	var items []models.ResourceItem
	if err := decode(resourcesJSON, &items); err != nil {
		return nil, fmt.Errorf("resources catalog: %w", err)
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("resources catalog entry %d (%q): %w", i, it.Title, err)
		}
	}
	return items, nil
}

// Music decodes the bundled song list.
func Music() ([]models.MusicItem, error) {
	var items []models.MusicItem
	if err := decode(musicJSON, &items); err != nil {
		return nil, fmt.Errorf("music catalog: %w", err)
	}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("music catalog entry %d (%q): %w", i, it.Title, err)
		}
	}
	return items, nil
}

func decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Seeder is the slice of the store that seeding needs.
type Seeder interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
	InsertResources(ctx context.Context, items ...models.ResourceItem) (int, error)
	InsertSongs(ctx context.Context, items ...models.MusicItem) (int, error)
}

// Result reports what a Seed call did.
type Result struct {
	Resources int
	Music     int
	Skipped   bool
}

// Seed loads both catalogs unless the store was launched before. force
// ignores the flag. Rows already present (same title and mood) are kept, so
// repeated seeding never duplicates content.
func Seed(ctx context.Context, s Seeder, force bool) (Result, error) {
	_, launched, err := s.GetSetting(ctx, config.SettingLaunchedBefore)
	if err != nil {
		return Result{}, fmt.Errorf("read launch flag: %w", err)
	}
	if launched && !force {
		return Result{Skipped: true}, nil
	}

	resources, err := Resources()
	if err != nil {
		return Result{}, err
	}
	songs, err := Music()
	if err != nil {
		return Result{}, err
	}

	var res Result
	if res.Resources, err = s.InsertResources(ctx, resources...); err != nil {
		return Result{}, fmt.Errorf("seed resources: %w", err)
	}
	if res.Music, err = s.InsertSongs(ctx, songs...); err != nil {
		return Result{}, fmt.Errorf("seed music: %w", err)
	}
	if err := s.SetSetting(ctx, config.SettingLaunchedBefore, "true"); err != nil {
		return Result{}, fmt.Errorf("mark launched: %w", err)
	}
	util.Logger.Infow("catalogs seeded", "resources", res.Resources, "music", res.Music)
	return res, nil
}
