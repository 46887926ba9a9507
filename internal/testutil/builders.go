package testutil

import (
	"time"

	"github.com/akyairhashvil/talk/internal/models"
)

// MoodEntryBuilder provides fluent API for creating test mood entries.
type MoodEntryBuilder struct {
	entry models.MoodEntry
}

func NewMoodEntry() *MoodEntryBuilder {
	return &MoodEntryBuilder{
		entry: models.MoodEntry{
			Seq:       1,
			Mood:      models.MoodModerate,
			Intensity: 3,
			CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func (b *MoodEntryBuilder) WithSeq(seq int64) *MoodEntryBuilder {
	b.entry.Seq = seq
	return b
}

func (b *MoodEntryBuilder) WithMood(m models.Mood) *MoodEntryBuilder {
	b.entry.Mood = m
	return b
}

func (b *MoodEntryBuilder) WithIntensity(i int) *MoodEntryBuilder {
	b.entry.Intensity = i
	return b
}

func (b *MoodEntryBuilder) WithCreatedAt(t time.Time) *MoodEntryBuilder {
	b.entry.CreatedAt = t
	return b
}

func (b *MoodEntryBuilder) Build() models.MoodEntry {
	return b.entry
}

// MoodLog builds a log of consecutive entries, one per mood given, with
// sequence numbers starting at 1 and entries a day apart.
func MoodLog(moods ...models.Mood) []models.MoodEntry {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	out := make([]models.MoodEntry, 0, len(moods))
	for i, m := range moods {
		out = append(out, NewMoodEntry().
			WithSeq(int64(i+1)).
			WithMood(m).
			WithIntensity(i%models.MaxIntensity+1).
			WithCreatedAt(start.AddDate(0, 0, i)).
			Build())
	}
	return out
}

// ResourceBuilder provides fluent API for creating test resources.
type ResourceBuilder struct {
	item models.ResourceItem
}

func NewResource() *ResourceBuilder {
	return &ResourceBuilder{
		item: models.ResourceItem{
			Title:       "Test Resource",
			Description: "A short read",
			Link:        "https://example.org/read",
			Mood:        models.MoodModerate,
		},
	}
}

func (b *ResourceBuilder) WithID(id int64) *ResourceBuilder {
	b.item.ID = id
	return b
}

func (b *ResourceBuilder) WithTitle(title string) *ResourceBuilder {
	b.item.Title = title
	return b
}

func (b *ResourceBuilder) WithMood(m models.Mood) *ResourceBuilder {
	b.item.Mood = m
	return b
}

func (b *ResourceBuilder) Build() models.ResourceItem {
	return b.item
}

// SongBuilder provides fluent API for creating test music items.
type SongBuilder struct {
	item models.MusicItem
}

func NewSong() *SongBuilder {
	return &SongBuilder{
		item: models.MusicItem{
			Title:  "Test Song",
			Artist: "Test Artist",
			Link:   "https://open.spotify.com/track/test",
			Mood:   models.MoodModerate,
		},
	}
}

func (b *SongBuilder) WithID(id int64) *SongBuilder {
	b.item.ID = id
	return b
}

func (b *SongBuilder) WithTitle(title string) *SongBuilder {
	b.item.Title = title
	return b
}

func (b *SongBuilder) WithArtist(artist string) *SongBuilder {
	b.item.Artist = artist
	return b
}

func (b *SongBuilder) WithMood(m models.Mood) *SongBuilder {
	b.item.Mood = m
	return b
}

func (b *SongBuilder) Build() models.MusicItem {
	return b.item
}
