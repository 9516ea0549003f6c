package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/deskcoach/internal/db"
	"github.com/alexanderramin/deskcoach/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Append(ctx context.Context, s *domain.PostureSession) error {
	query := `INSERT INTO posture_sessions (id, posture, started_at, ended_at, active_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		string(s.Posture),
		s.StartedAt.Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
		s.ActiveSeconds,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting posture session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.PostureSession, error) {
	query := `SELECT id, posture, started_at, ended_at, active_seconds
		FROM posture_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.PostureSession
	var posture, startedAtStr string
	var endedAt sql.NullString
	err := row.Scan(&s.ID, &posture, &startedAtStr, &endedAt, &s.ActiveSeconds)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("posture session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning posture session: %w", err)
	}
	return populateSession(&s, posture, startedAtStr, endedAt)
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, days int) ([]*domain.PostureSession, error) {
	query := `SELECT id, posture, started_at, ended_at, active_seconds
		FROM posture_sessions
		WHERE started_at >= date('now', ? || ' days')
		ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent posture sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.PostureSession
	for rows.Next() {
		var s domain.PostureSession
		var posture, startedAtStr string
		var endedAt sql.NullString
		if err := rows.Scan(&s.ID, &posture, &startedAtStr, &endedAt, &s.ActiveSeconds); err != nil {
			return nil, fmt.Errorf("scanning posture session row: %w", err)
		}
		session, parseErr := populateSession(&s, posture, startedAtStr, endedAt)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating posture sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a PostureSession after scanning raw strings.
func populateSession(s *domain.PostureSession, posture, startedAtStr string, endedAt sql.NullString) (*domain.PostureSession, error) {
	s.Posture = domain.Posture(posture)
	var parseErr error
	s.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	s.EndedAt = parseNullableTime(endedAt, time.RFC3339)
	return s, nil
}
