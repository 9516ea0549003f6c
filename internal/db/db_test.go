package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_MigratesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"posture_sessions", "daily_totals", "session_events", "settings"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}

	// Re-running migrations must be a no-op.
	require.NoError(t, Migrate(database))
}

func TestSQLiteUnitOfWork_CommitsOnSuccess(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO daily_totals (date, standing_seconds, sitting_seconds, updated_at)
			 VALUES ('2025-03-15', 60, 120, '2025-03-15T10:00:00Z')`)
		return err
	})
	require.NoError(t, err)

	var standing int
	require.NoError(t, database.QueryRow(
		`SELECT standing_seconds FROM daily_totals WHERE date='2025-03-15'`,
	).Scan(&standing))
	assert.Equal(t, 60, standing)
}

func TestSQLiteUnitOfWork_RollsBackOnError(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	boom := errors.New("boom")
	uow := NewSQLiteUnitOfWork(database)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO daily_totals (date, standing_seconds, sitting_seconds, updated_at)
			 VALUES ('2025-03-15', 60, 120, '2025-03-15T10:00:00Z')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM daily_totals`).Scan(&count))
	assert.Equal(t, 0, count)
}
