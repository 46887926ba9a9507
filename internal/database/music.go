package database

import (
	"context"

	"github.com/akyairhashvil/talk/internal/models"
	"github.com/jmoiron/sqlx"
)

const musicColumns = `id, title, artist, link, mood`

// InsertMusic adds a single song. A row with the same title and mood
// is left untouched.
func (d *Database) InsertMusic(ctx context.Context, item models.MusicItem) error {
	_, err := d.InsertSongs(ctx, item)
	return err
}

// InsertSongs inserts the batch in one transaction and reports how many
// rows were new. Any invalid item or failing row aborts the whole batch.
func (d *Database) InsertSongs(ctx context.Context, items ...models.MusicItem) (int, error) {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return 0, wrapErr(EntityMusic, "insert batch", 0, violation{err})
		}
	}
	if len(items) == 0 {
		return 0, nil
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	d.musicMu.Lock()
	defer d.musicMu.Unlock()

	inserted := 0
	err := d.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`INSERT INTO music (title, artist, link, mood) VALUES (?, ?, ?, ?)
			ON CONFLICT (title, mood) DO NOTHING`)
		for _, item := range items {
			res, err := tx.ExecContext(ctx, query, item.Title, item.Artist, item.Link, int(item.Mood))
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			inserted += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, wrapErr(EntityMusic, "insert batch", 0, err)
	}
	return inserted, nil
}

func (d *Database) GetAllMusic(ctx context.Context) ([]models.MusicItem, error) {
	return d.listMusic(ctx, "list", newSelectQuery("music", musicColumns).OrderBy("id ASC"))
}

func (d *Database) GetMusicByMood(ctx context.Context, mood models.Mood) ([]models.MusicItem, error) {
	if !mood.Valid() {
		return nil, wrapErr(EntityMusic, "list by mood", 0, violation{models.ErrInvalidMood})
	}
	return d.listMusic(ctx, "list by mood", newSelectQuery("music", musicColumns).WhereMood(mood).OrderBy("id ASC"))
}

func (d *Database) listMusic(ctx context.Context, op string, q *selectQuery) ([]models.MusicItem, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, args := q.Build()
	items := []models.MusicItem{}
	if err := d.DB.SelectContext(ctx, &items, d.DB.Rebind(query), args...); err != nil {
		return nil, wrapErr(EntityMusic, op, 0, err)
	}
	return items, nil
}

// DeleteMusic removes item by ID, or by title and mood when ID is unset.
func (d *Database) DeleteMusic(ctx context.Context, item models.MusicItem) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	d.musicMu.Lock()
	defer d.musicMu.Unlock()

	query, args := `DELETE FROM music WHERE id = ?`, []interface{}{item.ID}
	if item.ID <= 0 {
		query, args = `DELETE FROM music WHERE title = ? AND mood = ?`, []interface{}{item.Title, int(item.Mood)}
	}
	res, err := d.DB.ExecContext(ctx, d.DB.Rebind(query), args...)
	if err != nil {
		return wrapErr(EntityMusic, "delete", item.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(EntityMusic, "delete", item.ID, err)
	}
	if n == 0 {
		return wrapErr(EntityMusic, "delete", item.ID, ErrNotFound)
	}
	return nil
}
