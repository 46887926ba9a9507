package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/talk/internal/models"
	"github.com/jmoiron/sqlx"
)

const moodColumns = `id, seq, mood, intensity, created_at`

// InsertMood appends one entry to the mood log and returns its sequence
// number. A zero Seq is assigned MAX(seq)+1; an explicit Seq must exceed the
// current maximum.
func (d *Database) InsertMood(ctx context.Context, entry models.MoodEntry) (int64, error) {
	if err := entry.Validate(); err != nil {
		return 0, wrapErr(EntityMood, "insert", 0, violation{err})
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	d.moodMu.Lock()
	defer d.moodMu.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	err := d.WithTx(ctx, func(tx *sqlx.Tx) error {
		last, err := maxMoodSeq(ctx, tx)
		if err != nil {
			return err
		}
		switch {
		case entry.Seq == 0:
			entry.Seq = last + 1
		case entry.Seq <= last:
			return violation{ErrSequenceNotIncreasing}
		}
		_, err = tx.ExecContext(ctx, tx.Rebind(
			`INSERT INTO moods (seq, mood, intensity, created_at) VALUES (?, ?, ?, ?)`),
			entry.Seq, int(entry.Mood), entry.Intensity, entry.CreatedAt)
		return err
	})
	if err != nil {
		return 0, wrapErr(EntityMood, "insert", entry.Seq, err)
	}
	return entry.Seq, nil
}

// RecordMood is the commit step of the mood dialog.
func (d *Database) RecordMood(ctx context.Context, mood models.Mood, intensity int) (int64, error) {
	return d.InsertMood(ctx, models.MoodEntry{Mood: mood, Intensity: intensity})
}

// GetAllMoods returns the whole log in insertion order.
func (d *Database) GetAllMoods(ctx context.Context) ([]models.MoodEntry, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, _ := newSelectQuery("moods", moodColumns).OrderBy("seq ASC").Build()
	entries := []models.MoodEntry{}
	if err := d.DB.SelectContext(ctx, &entries, query); err != nil {
		return nil, wrapErr(EntityMood, "list", 0, err)
	}
	return entries, nil
}

// LatestMood returns the most recent entry, if any.
func (d *Database) LatestMood(ctx context.Context) (models.MoodEntry, bool, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, _ := newSelectQuery("moods", moodColumns).OrderBy("seq DESC").Limit(1).Build()
	var e models.MoodEntry
	err := d.DB.GetContext(ctx, &e, query)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MoodEntry{}, false, nil
	}
	if err != nil {
		return models.MoodEntry{}, false, wrapErr(EntityMood, "latest", 0, err)
	}
	return e, true, nil
}

func maxMoodSeq(ctx context.Context, q sqlx.QueryerContext) (int64, error) {
	var last int64
	err := sqlx.GetContext(ctx, q, &last, `SELECT COALESCE(MAX(seq), 0) FROM moods`)
	return last, err
}
