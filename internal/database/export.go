package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/akyairhashvil/talk/internal/models"
)

type ExportMood struct {
	Seq       int64  `json:"seq"`
	Mood      int    `json:"mood"`
	MoodName  string `json:"mood_name"`
	Intensity int    `json:"intensity"`
	CreatedAt string `json:"created_at"`
}

type JournalExport struct {
	Version    int                   `json:"version"`
	ExportedAt string                `json:"exported_at"`
	Moods      []ExportMood          `json:"moods"`
	Resources  []models.ResourceItem `json:"resources"`
	Music      []models.MusicItem    `json:"music"`
}

// ExportJournal serializes the whole store as indented JSON.
func (d *Database) ExportJournal(ctx context.Context) ([]byte, error) {
	entries, err := d.GetAllMoods(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := d.GetAllResources(ctx)
	if err != nil {
		return nil, err
	}
	music, err := d.GetAllMusic(ctx)
	if err != nil {
		return nil, err
	}

	out := JournalExport{
		Version:    schemaVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Moods:      make([]ExportMood, 0, len(entries)),
		Resources:  resources,
		Music:      music,
	}
	for _, e := range entries {
		out.Moods = append(out.Moods, ExportMood{
			Seq:       e.Seq,
			Mood:      int(e.Mood),
			MoodName:  e.Mood.String(),
			Intensity: e.Intensity,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
