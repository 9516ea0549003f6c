package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/deskcoach/internal/db"
	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/alexanderramin/deskcoach/internal/engine"
	"github.com/alexanderramin/deskcoach/internal/notify"
	"github.com/alexanderramin/deskcoach/internal/repository"
)

type coachService struct {
	engine   *engine.Engine
	totals   repository.TotalsRepo
	sessions repository.SessionRepo
	events   repository.EventRepo
	notifier notify.Notifier
	uow      db.UnitOfWork
	observer UseCaseObserver

	// Rows that failed to persist, retried on the next tick. The
	// engine keeps accruing in memory regardless; a sick store must
	// never stall the tick cadence.
	pendingSessions []domain.PostureSession
	pendingTotals   []domain.DailyTotals
	pendingEvents   []domain.SessionEvent
}

// NewCoachService wires the engine to its collaborators.
func NewCoachService(
	eng *engine.Engine,
	totals repository.TotalsRepo,
	sessions repository.SessionRepo,
	events repository.EventRepo,
	notifier notify.Notifier,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CoachService {
	return &coachService{
		engine:   eng,
		totals:   totals,
		sessions: sessions,
		events:   events,
		notifier: notifier,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *coachService) Restore(ctx context.Context, now time.Time) error {
	t, err := s.totals.GetByDate(ctx, domain.DayOf(now))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	s.engine.RestoreTotals(*t)
	return nil
}

func (s *coachService) Tick(ctx context.Context, now time.Time, activity domain.ActivityState) error {
	start := time.Now()
	res := s.engine.OnTick(now, activity)

	for _, ev := range res.Events {
		s.deliver(ctx, ev)
	}

	s.pendingSessions = append(s.pendingSessions, res.ClosedSessions...)
	s.pendingTotals = append(s.pendingTotals, res.FinalizedTotals...)
	if res.ActivityChanged != nil {
		s.pendingEvents = append(s.pendingEvents, *res.ActivityChanged)
	}

	err := s.flush(ctx)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "coach.tick",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"activity": string(activity),
			"events":   len(res.Events),
		},
	})
	// Persistence trouble is logged above and retried next tick; the
	// tick itself never fails on it.
	return nil
}

func (s *coachService) ConfirmPosture(ctx context.Context, p domain.Posture, now time.Time) error {
	res, err := s.engine.ConfirmPosture(p, now)
	if err != nil {
		return err
	}
	if res.Closed != nil {
		s.pendingSessions = append(s.pendingSessions, *res.Closed)
	}
	if err := s.flush(ctx); err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "coach.confirm_posture", Success: false, Err: err, StartedAt: time.Now(),
		})
	}
	return nil
}

func (s *coachService) Pause()  { s.engine.Pause() }
func (s *coachService) Resume() { s.engine.Resume() }

func (s *coachService) Snooze(d time.Duration) error {
	return s.engine.Snooze(d)
}

func (s *coachService) Progress(now time.Time) domain.Progress {
	return s.engine.Progress(now)
}

func (s *coachService) Settings() domain.Settings {
	return s.engine.Settings()
}

func (s *coachService) ApplySettings(settings domain.Settings) error {
	return s.engine.SetSettings(settings)
}

func (s *coachService) Shutdown(ctx context.Context, now time.Time) error {
	res := s.engine.Shutdown(now)
	s.pendingSessions = append(s.pendingSessions, res.ClosedSessions...)
	return s.flush(ctx)
}

// deliver hands one event to the notifier, honoring the notifications
// toggle. Delivery is fire-and-forget: the notifier chain logs its own
// failures and nothing propagates back into tick processing.
func (s *coachService) deliver(ctx context.Context, ev domain.ReminderEvent) {
	if s.notifier == nil || !s.engine.Settings().NotificationsEnabled {
		return
	}
	_ = s.notifier.Notify(ctx, ev)
}

// flush persists pending rows plus the live totals row. Finalized rows
// and closed sessions go through one transaction so a day rollover is
// recorded exactly once.
func (s *coachService) flush(ctx context.Context) error {
	if len(s.pendingSessions) > 0 || len(s.pendingTotals) > 0 {
		err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txSessions := repository.NewSQLiteSessionRepo(tx)
			txTotals := repository.NewSQLiteTotalsRepo(tx)
			for i := range s.pendingSessions {
				if err := txSessions.Append(ctx, &s.pendingSessions[i]); err != nil {
					return err
				}
			}
			for i := range s.pendingTotals {
				if err := txTotals.Upsert(ctx, &s.pendingTotals[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		s.pendingSessions = nil
		s.pendingTotals = nil
	}

	for len(s.pendingEvents) > 0 {
		if err := s.events.Append(ctx, s.pendingEvents[0]); err != nil {
			return err
		}
		s.pendingEvents = s.pendingEvents[1:]
	}

	live := s.engine.Totals()
	if live.Date == "" {
		return nil
	}
	return s.totals.Upsert(ctx, &live)
}
