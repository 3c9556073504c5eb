package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sadopc/tagzi/internal/config"
	"github.com/sadopc/tagzi/internal/daybook"
	"github.com/sadopc/tagzi/internal/ledger"
	"github.com/sadopc/tagzi/internal/logger"
	"github.com/sadopc/tagzi/internal/reminder"
	"github.com/sadopc/tagzi/internal/store"
	"github.com/sadopc/tagzi/internal/tui"
)

func main() {
	envFile := flag.String("env", "", "path to a .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Must(logger.New(cfg.LogPath, cfg.LogLevel))
	defer log.Sync()

	s, err := store.New(cfg.DBPath, store.WithLogger(logger.Named(log, "store")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	book := daybook.New(s, logger.Named(log, "daybook"))
	money := ledger.NewCurrencyFormatter(cfg.Language(), cfg.CurrencySymbol)

	var p *tea.Program
	sched := reminder.NewScheduler(func(r reminder.Reminder) {
		if p != nil {
			p.Send(tui.ReminderMsg{Reminder: r})
		}
	}, logger.Named(log, "reminder"))
	configureReminder(s, sched, log)

	app := tui.NewApp(s,
		tui.WithBook(book),
		tui.WithCurrency(money),
		tui.WithReminder(sched),
		tui.WithLogger(log),
	)
	p = tea.NewProgram(app, tea.WithAltScreen())

	sched.Start()
	defer sched.Stop()

	log.Info("tagzi started", zap.String("db", cfg.DBPath))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// configureReminder applies the stored reminder settings. Bad values fall
// back to the defaults.
func configureReminder(s *store.Store, sched *reminder.Scheduler, log *zap.Logger) {
	ctx := context.Background()

	enabled := true
	if v, err := s.GetSetting(ctx, store.SettingReminderEnabled); err == nil {
		if b, err := strconv.ParseBool(v); err == nil {
			enabled = b
		}
	}
	at, err := s.GetSetting(ctx, store.SettingReminderTime)
	if err != nil {
		at = reminder.DefaultTime
	}

	if err := sched.Configure(enabled, at); err != nil {
		log.Warn("invalid reminder time, using default", zap.String("time", at), zap.Error(err))
		_ = sched.Configure(enabled, reminder.DefaultTime)
	}
}
