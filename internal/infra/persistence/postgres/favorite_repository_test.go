package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures the SQL gorm generates, so dry-run tests can assert
// on query shape without a live database.
type sqlRecorder struct {
	queries []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *sqlRecorder) Info(context.Context, string, ...any) {}

func (r *sqlRecorder) Warn(context.Context, string, ...any) {}

func (r *sqlRecorder) Error(context.Context, string, ...any) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.queries = append(r.queries, sql)
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	recorder := &sqlRecorder{}
	db, err := gorm.Open(pgdriver.Open("host=localhost user=shelf dbname=shelf sslmode=disable"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 recorder,
	})
	require.NoError(t, err)

	return db, recorder
}

// The list query carries the ordering contract: favorites come back sorted by
// book title, ties broken by book id, scoped to the requesting user.
func TestFavoriteRepository_ListQueryOrdersByBookTitle(t *testing.T) {
	db, recorder := newDryRunDB(t)
	repo := NewFavoriteRepository(db)

	_, err := repo.FindFavoritesByUser(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, recorder.queries, 1)
	query := recorder.queries[0]
	assert.Contains(t, query, `LEFT JOIN "books" "Book"`)
	assert.Contains(t, query, "favorites.user_id = 7")
	assert.Contains(t, query, `ORDER BY "Book"."title" ASC, "Book"."id" ASC`)
}
