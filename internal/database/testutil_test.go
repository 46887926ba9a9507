package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/akyairhashvil/talk/internal/models"
)

type TestDataBuilder struct {
	t   *testing.T
	ctx context.Context
	db  *Database
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

// WithMoods records count entries cycling through the six moods.
func (b *TestDataBuilder) WithMoods(count int) *TestDataBuilder {
	b.t.Helper()
	moods := models.AllMoods()
	for i := 0; i < count; i++ {
		mood := moods[i%len(moods)]
		intensity := i%models.MaxIntensity + 1
		if _, err := b.db.RecordMood(b.ctx, mood, intensity); err != nil {
			b.t.Fatalf("RecordMood failed: %v", err)
		}
	}
	return b
}

// WithResources adds perMood resources for every mood.
func (b *TestDataBuilder) WithResources(perMood int) *TestDataBuilder {
	b.t.Helper()
	var items []models.ResourceItem
	for _, mood := range models.AllMoods() {
		for i := 0; i < perMood; i++ {
			items = append(items, models.ResourceItem{
				Title:       fmt.Sprintf("%s article %d", mood, i+1),
				Description: "desc",
				Link:        fmt.Sprintf("https://example.org/%d/%d", mood, i),
				Mood:        mood,
			})
		}
	}
	if _, err := b.db.InsertResources(b.ctx, items...); err != nil {
		b.t.Fatalf("InsertResources failed: %v", err)
	}
	return b
}

// WithSongs adds perMood songs for every mood.
func (b *TestDataBuilder) WithSongs(perMood int) *TestDataBuilder {
	b.t.Helper()
	var items []models.MusicItem
	for _, mood := range models.AllMoods() {
		for i := 0; i < perMood; i++ {
			items = append(items, models.MusicItem{
				Title:  fmt.Sprintf("%s song %d", mood, i+1),
				Artist: "Artist",
				Link:   fmt.Sprintf("https://open.spotify.com/track/%d%d", mood, i),
				Mood:   mood,
			})
		}
	}
	if _, err := b.db.InsertSongs(b.ctx, items...); err != nil {
		b.t.Fatalf("InsertSongs failed: %v", err)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}
