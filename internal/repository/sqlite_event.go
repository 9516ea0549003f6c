package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/deskcoach/internal/db"
	"github.com/alexanderramin/deskcoach/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
// Activity transitions are append-only; the journal feeds trend views.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(conn db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: conn}
}

func (r *SQLiteEventRepo) Append(ctx context.Context, e domain.SessionEvent) error {
	query := `INSERT INTO session_events (ts, state) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.At.Format(time.RFC3339), string(e.State))
	if err != nil {
		return fmt.Errorf("inserting session event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) ListRecent(ctx context.Context, days int) ([]domain.SessionEvent, error) {
	query := `SELECT ts, state FROM session_events
		WHERE ts >= date('now', ? || ' days')
		ORDER BY ts`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent session events: %w", err)
	}
	defer rows.Close()

	var events []domain.SessionEvent
	for rows.Next() {
		var tsStr, state string
		if err := rows.Scan(&tsStr, &state); err != nil {
			return nil, fmt.Errorf("scanning session event row: %w", err)
		}
		ts, parseErr := time.Parse(time.RFC3339, tsStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing session event ts: %w", parseErr)
		}
		events = append(events, domain.SessionEvent{At: ts, State: domain.ActivityState(state)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session events: %w", err)
	}
	return events, nil
}
