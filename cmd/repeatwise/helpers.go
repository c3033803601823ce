package main

import (
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/ntgptit/repeatwise/internal/config"
	"github.com/ntgptit/repeatwise/internal/database"
	"github.com/ntgptit/repeatwise/internal/notify"
	"github.com/ntgptit/repeatwise/internal/reminder"
	"github.com/ntgptit/repeatwise/internal/srs"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func openDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func newSRSService(cfg *config.Config, db *sqlx.DB) (*srs.Service, error) {
	scheduler, err := srs.NewScheduler(cfg.SRS)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return srs.NewService(scheduler, srs.NewDBItemRepository(db), srs.SystemClock{}), nil
}

func newReminderService(cfg *config.Config, db *sqlx.DB) (*reminder.Service, reminder.SlotRepository, error) {
	sender := newSender(cfg.Notifier)
	slots := reminder.NewDBSlotRepository(db)
	service, err := reminder.NewService(slots,
		notify.NewAdapter(sender, notify.Channel(cfg.Notifier.Channel)),
		cfg.Reminder, srs.SystemClock{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create reminder service: %w", err)
	}
	return service, slots, nil
}

func newSender(cfg config.NotifierConfig) notify.Sender {
	if cfg.Channel == string(notify.ChannelWebhook) && cfg.WebhookURL != "" {
		return notify.NewRetryingSender(notify.NewWebhookSender(cfg.WebhookURL), cfg.RetryAttempts)
	}
	return notify.LogSender{}
}

func parseID(arg, name string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s: %q", name, arg)
	}
	return id, nil
}
