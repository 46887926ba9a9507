package database

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/talk/internal/models"
)

// selectQuery assembles the simple single-table SELECTs the repositories
// issue. Placeholders are written as '?' and rebound by the caller's handle.
type selectQuery struct {
	table   string
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func newSelectQuery(table, columns string) *selectQuery {
	return &selectQuery{table: table, columns: columns}
}

func (q *selectQuery) Where(filter string, args ...interface{}) *selectQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *selectQuery) WhereMood(mood models.Mood) *selectQuery {
	return q.Where("mood = ?", int(mood))
}

func (q *selectQuery) OrderBy(orderBy string) *selectQuery {
	q.orderBy = orderBy
	return q
}

func (q *selectQuery) Limit(limit int) *selectQuery {
	q.limit = limit
	return q
}

func (q *selectQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM %s", q.columns, q.table)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
