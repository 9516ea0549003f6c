package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/alexanderramin/deskcoach/internal/repository"
)

type settingsService struct {
	repo repository.SettingsRepo
}

// NewSettingsService creates a SettingsService over the given repository.
func NewSettingsService(repo repository.SettingsRepo) SettingsService {
	return &settingsService{repo: repo}
}

// Get returns the persisted settings, seeding defaults on first run.
func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			defaults := domain.DefaultSettings()
			if err := s.repo.Upsert(ctx, &defaults); err != nil {
				return domain.Settings{}, err
			}
			return defaults, nil
		}
		return domain.Settings{}, err
	}
	return *stored, nil
}

// Update validates and persists new settings.
func (s *settingsService) Update(ctx context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, &settings)
}
