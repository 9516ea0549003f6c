package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/alexanderramin/deskcoach/internal/repository"
	"github.com/alexanderramin/deskcoach/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_AppendAndGetByID(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	ctx := context.Background()

	started := time.Now().UTC().Truncate(time.Second).Add(-30 * time.Minute)
	ended := started.Add(25 * time.Minute)
	session := &domain.PostureSession{
		ID:            uuid.New().String(),
		Posture:       domain.PostureStanding,
		StartedAt:     started,
		EndedAt:       &ended,
		ActiveSeconds: 1400,
	}
	require.NoError(t, repo.Append(ctx, session))

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, domain.PostureStanding, got.Posture)
	assert.True(t, got.StartedAt.Equal(started))
	require.NotNil(t, got.EndedAt)
	assert.True(t, got.EndedAt.Equal(ended))
	assert.Equal(t, 1400, got.ActiveSeconds)
}

func TestSessionRepo_OpenSessionHasNilEndedAt(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	ctx := context.Background()

	session := &domain.PostureSession{
		ID:        uuid.New().String(),
		Posture:   domain.PostureSitting,
		StartedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Append(ctx, session))

	got, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EndedAt)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)

	_, err := repo.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionRepo_ListRecent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	recent := &domain.PostureSession{
		ID:        uuid.New().String(),
		Posture:   domain.PostureSitting,
		StartedAt: now.Add(-2 * time.Hour),
	}
	old := &domain.PostureSession{
		ID:        uuid.New().String(),
		Posture:   domain.PostureStanding,
		StartedAt: now.AddDate(0, 0, -30),
	}
	require.NoError(t, repo.Append(ctx, recent))
	require.NoError(t, repo.Append(ctx, old))

	got, err := repo.ListRecent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, recent.ID, got[0].ID)
}
