package service

import (
	"context"

	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/alexanderramin/deskcoach/internal/repository"
)

type historyService struct {
	totals   repository.TotalsRepo
	sessions repository.SessionRepo
}

// NewHistoryService creates a HistoryService over the given repositories.
func NewHistoryService(totals repository.TotalsRepo, sessions repository.SessionRepo) HistoryService {
	return &historyService{totals: totals, sessions: sessions}
}

func (s *historyService) ListRecentTotals(ctx context.Context, days int) ([]*domain.DailyTotals, error) {
	return s.totals.ListRecent(ctx, days)
}

func (s *historyService) ListRecentSessions(ctx context.Context, days int) ([]*domain.PostureSession, error) {
	return s.sessions.ListRecent(ctx, days)
}
