package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/deskcoach/internal/db"
	"github.com/alexanderramin/deskcoach/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
// There is a single settings row keyed 'default'.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT goal_standing_seconds, reminder_interval_seconds, posture_check_interval_seconds,
		snooze_seconds, idle_threshold_seconds, idle_reset_seconds, stand_threshold_mm,
		notifications_enabled, sound_enabled
		FROM settings WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.Settings
	var notifEnabled, soundEnabled int
	err := row.Scan(
		&s.GoalStandingSeconds,
		&s.ReminderIntervalSeconds,
		&s.PostureCheckIntervalSeconds,
		&s.SnoozeSeconds,
		&s.IdleThresholdSeconds,
		&s.IdleResetSeconds,
		&s.StandThresholdMM,
		&notifEnabled,
		&soundEnabled,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	s.NotificationsEnabled = intToBool(notifEnabled)
	s.SoundEnabled = intToBool(soundEnabled)
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT OR REPLACE INTO settings (id, goal_standing_seconds, reminder_interval_seconds,
		posture_check_interval_seconds, snooze_seconds, idle_threshold_seconds, idle_reset_seconds,
		stand_threshold_mm, notifications_enabled, sound_enabled)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.GoalStandingSeconds,
		s.ReminderIntervalSeconds,
		s.PostureCheckIntervalSeconds,
		s.SnoozeSeconds,
		s.IdleThresholdSeconds,
		s.IdleResetSeconds,
		s.StandThresholdMM,
		boolToInt(s.NotificationsEnabled),
		boolToInt(s.SoundEnabled),
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
