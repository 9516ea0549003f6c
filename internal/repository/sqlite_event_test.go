package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/alexanderramin/deskcoach/internal/repository"
	"github.com/alexanderramin/deskcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepo_AppendAndListRecent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteEventRepo(database)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Append(ctx, domain.SessionEvent{At: now.Add(-time.Hour), State: domain.ActivityIdle}))
	require.NoError(t, repo.Append(ctx, domain.SessionEvent{At: now, State: domain.ActivityActive}))
	require.NoError(t, repo.Append(ctx, domain.SessionEvent{At: now.AddDate(0, 0, -14), State: domain.ActivityIdle}))

	got, err := repo.ListRecent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Chronological order, oldest first.
	assert.Equal(t, domain.ActivityIdle, got[0].State)
	assert.True(t, got[0].At.Equal(now.Add(-time.Hour)))
	assert.Equal(t, domain.ActivityActive, got[1].State)
}

func TestEventRepo_RejectsUnknownState(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteEventRepo(database)

	err := repo.Append(context.Background(), domain.SessionEvent{
		At:    time.Now().UTC(),
		State: domain.ActivityState("bogus"),
	})
	assert.Error(t, err)
}
