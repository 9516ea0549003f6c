package service_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/alexanderramin/deskcoach/internal/repository"
	"github.com/alexanderramin/deskcoach/internal/service"
	"github.com/alexanderramin/deskcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetSeedsDefaultsOnFirstRun(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSettingsRepo(database)
	svc := service.NewSettingsService(repo)
	ctx := context.Background()

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), got)

	// Seeding persisted the row, not just returned it.
	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *stored)
}

func TestSettingsService_UpdateValidates(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewSettingsService(repository.NewSQLiteSettingsRepo(database))
	ctx := context.Background()

	bad := domain.DefaultSettings()
	bad.SnoozeSeconds = -1
	assert.ErrorIs(t, svc.Update(ctx, bad), domain.ErrInvalidInput)

	good := domain.DefaultSettings()
	good.GoalStandingSeconds = 90 * 60
	require.NoError(t, svc.Update(ctx, good))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90*60, got.GoalStandingSeconds)
}
