package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/deskcoach/internal/cli"
	"github.com/alexanderramin/deskcoach/internal/db"
	"github.com/alexanderramin/deskcoach/internal/desk"
	"github.com/alexanderramin/deskcoach/internal/engine"
	"github.com/alexanderramin/deskcoach/internal/notify"
	"github.com/alexanderramin/deskcoach/internal/repository"
	"github.com/alexanderramin/deskcoach/internal/service"
	"github.com/alexanderramin/deskcoach/internal/watcher"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.deskcoach/deskcoach.db
	dbPath := os.Getenv("DESKCOACH_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".deskcoach", "deskcoach.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	totalsRepo := repository.NewSQLiteTotalsRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for rollover finalization
	uow := db.NewSQLiteUnitOfWork(database)

	// Load settings (seeds defaults on first run)
	settingsSvc := service.NewSettingsService(settingsRepo)
	settings, err := settingsSvc.Get(context.Background())
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	// Pick a notification backend: desktop toast when available, log
	// fallback otherwise. Delivery failures degrade down the chain.
	var notifier notify.Notifier
	logNotifier := notify.NewLogNotifier(os.Stderr)
	if toast, err := notify.NewToastNotifier(settings.SoundEnabled); err == nil {
		notifier = notify.NewFallbackNotifier(os.Stderr, toast, logNotifier)
	} else {
		notifier = logNotifier
	}

	// Activity watcher: best-effort idle probe, always-active fallback.
	var probe watcher.Probe
	if execProbe, err := watcher.NewExecProbe(); err == nil {
		probe = execProbe
	}
	activityWatcher := watcher.New(probe, settings.IdleThreshold())

	// Wire the coach
	eng := engine.New(settings)
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("DESKCOACH_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}
	coachSvc := service.NewCoachService(eng, totalsRepo, sessionRepo, eventRepo, notifier, uow, observer)

	app := &cli.App{
		Coach:    coachSvc,
		History:  service.NewHistoryService(totalsRepo, sessionRepo),
		Settings: settingsSvc,
		Watcher:  activityWatcher,
	}

	// Desk controller polling, only when configured.
	deskCfg := desk.LoadConfig()
	if deskCfg.Enabled {
		client := desk.NewClient(deskCfg)
		app.DeskHeight = func(ctx context.Context) (int, error) {
			ctx, cancel := context.WithTimeout(ctx, deskCfg.Timeout+time.Second)
			defer cancel()
			return client.HeightMM(ctx)
		}
	}

	// Detect interactive terminal for the dashboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
