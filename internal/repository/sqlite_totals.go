package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/deskcoach/internal/db"
	"github.com/alexanderramin/deskcoach/internal/domain"
)

// SQLiteTotalsRepo implements TotalsRepo using a SQLite database.
type SQLiteTotalsRepo struct {
	db db.DBTX
}

// NewSQLiteTotalsRepo creates a new SQLiteTotalsRepo.
func NewSQLiteTotalsRepo(conn db.DBTX) *SQLiteTotalsRepo {
	return &SQLiteTotalsRepo{db: conn}
}

func (r *SQLiteTotalsRepo) GetByDate(ctx context.Context, date string) (*domain.DailyTotals, error) {
	query := `SELECT date, standing_seconds, sitting_seconds FROM daily_totals WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date)

	var t domain.DailyTotals
	err := row.Scan(&t.Date, &t.StandingSeconds, &t.SittingSeconds)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily totals: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily totals: %w", err)
	}
	return &t, nil
}

func (r *SQLiteTotalsRepo) Upsert(ctx context.Context, t *domain.DailyTotals) error {
	query := `INSERT INTO daily_totals (date, standing_seconds, sitting_seconds, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			standing_seconds = excluded.standing_seconds,
			sitting_seconds  = excluded.sitting_seconds,
			updated_at       = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, t.Date, t.StandingSeconds, t.SittingSeconds, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting daily totals: %w", err)
	}
	return nil
}

func (r *SQLiteTotalsRepo) ListRecent(ctx context.Context, days int) ([]*domain.DailyTotals, error) {
	query := `SELECT date, standing_seconds, sitting_seconds
		FROM daily_totals
		WHERE date >= date('now', ? || ' days')
		ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent daily totals: %w", err)
	}
	defer rows.Close()

	var totals []*domain.DailyTotals
	for rows.Next() {
		var t domain.DailyTotals
		if err := rows.Scan(&t.Date, &t.StandingSeconds, &t.SittingSeconds); err != nil {
			return nil, fmt.Errorf("scanning daily totals row: %w", err)
		}
		totals = append(totals, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily totals: %w", err)
	}
	return totals, nil
}
