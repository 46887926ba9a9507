package database

import (
	"context"

	"github.com/akyairhashvil/talk/internal/models"
	"github.com/jmoiron/sqlx"
)

const resourceColumns = `id, title, description, link, mood`

// InsertResource adds a single resource. A row with the same title and mood
// is left untouched.
func (d *Database) InsertResource(ctx context.Context, item models.ResourceItem) error {
	_, err := d.InsertResources(ctx, item)
	return err
}

// InsertResources inserts the batch in one transaction and reports how many
// rows were new. Any invalid item or failing row aborts the whole batch.
func (d *Database) InsertResources(ctx context.Context, items ...models.ResourceItem) (int, error) {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return 0, wrapErr(EntityResource, "insert batch", 0, violation{err})
		}
	}
	if len(items) == 0 {
		return 0, nil
	}
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	d.resourceMu.Lock()
	defer d.resourceMu.Unlock()

	inserted := 0
	err := d.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := tx.Rebind(`INSERT INTO resources (title, description, link, mood) VALUES (?, ?, ?, ?)
			ON CONFLICT (title, mood) DO NOTHING`)
		for _, item := range items {
			res, err := tx.ExecContext(ctx, query, item.Title, item.Description, item.Link, int(item.Mood))
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
		return 0, wrapErr(EntityResource, "insert batch", 0, err)
	}
	return inserted, nil
}

func (d *Database) GetAllResources(ctx context.Context) ([]models.ResourceItem, error) {
	return d.listResources(ctx, "list", newSelectQuery("resources", resourceColumns).OrderBy("id ASC"))
}

func (d *Database) GetResourcesByMood(ctx context.Context, mood models.Mood) ([]models.ResourceItem, error) {
	if !mood.Valid() {
		return nil, wrapErr(EntityResource, "list by mood", 0, violation{models.ErrInvalidMood})
	}
	return d.listResources(ctx, "list by mood", newSelectQuery("resources", resourceColumns).WhereMood(mood).OrderBy("id ASC"))
}

func (d *Database) listResources(ctx context.Context, op string, q *selectQuery) ([]models.ResourceItem, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, args := q.Build()
	items := []models.ResourceItem{}
	if err := d.DB.SelectContext(ctx, &items, d.DB.Rebind(query), args...); err != nil {
		return nil, wrapErr(EntityResource, op, 0, err)
	}
	return items, nil
}

// DeleteResource removes item by ID, or by title and mood when ID is unset.
func (d *Database) DeleteResource(ctx context.Context, item models.ResourceItem) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	d.resourceMu.Lock()
	defer d.resourceMu.Unlock()

	query, args := `DELETE FROM resources WHERE id = ?`, []interface{}{item.ID}
	if item.ID <= 0 {
		query, args = `DELETE FROM resources WHERE title = ? AND mood = ?`, []interface{}{item.Title, int(item.Mood)}
	}
	res, err := d.DB.ExecContext(ctx, d.DB.Rebind(query), args...)
	if err != nil {
		return wrapErr(EntityResource, "delete", item.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr(EntityResource, "delete", item.ID, err)
	}
	if n == 0 {
		return wrapErr(EntityResource, "delete", item.ID, ErrNotFound)
	}
	return nil
}
