// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ntgptit/repeatwise/internal/cycle"
	"github.com/ntgptit/repeatwise/internal/reminder"
	"github.com/ntgptit/repeatwise/internal/schedule"
	"github.com/ntgptit/repeatwise/internal/srs"
	"github.com/ntgptit/repeatwise/internal/stats"
)

type Config struct {
	Database  DatabaseConfig    `mapstructure:"database"`
	SRS       srs.Config        `mapstructure:"srs"`
	Cycle     cycle.DelayConfig `mapstructure:"cycle"`
	Reminder  reminder.Config   `mapstructure:"reminder"`
	Scheduler schedule.Config   `mapstructure:"scheduler"`
	Notifier  NotifierConfig    `mapstructure:"notifier"`
	Stats     stats.Config      `mapstructure:"stats"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type NotifierConfig struct {
	Channel       string `mapstructure:"channel" validate:"omitempty,oneof=log webhook"`
	WebhookURL    string `mapstructure:"webhook_url" validate:"omitempty,url"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/repeatwise")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	srsDefaults := srs.DefaultConfig()
	v.SetDefault("srs.total_boxes", srsDefaults.TotalBoxes)
	v.SetDefault("srs.box_intervals", srsDefaults.BoxIntervals)
	v.SetDefault("srs.forgotten_action", string(srsDefaults.ForgottenAction))
	v.SetDefault("srs.move_down_boxes", srsDefaults.MoveDownBoxes)
	v.SetDefault("srs.mature_box_threshold", srsDefaults.MatureBoxThreshold)

	delayDefaults := cycle.DefaultDelayConfig()
	v.SetDefault("cycle.base_delay_days", delayDefaults.BaseDelayDays)
	v.SetDefault("cycle.score_penalty", delayDefaults.ScorePenalty)
	v.SetDefault("cycle.size_scaling", delayDefaults.SizeScaling)
	v.SetDefault("cycle.min_delay_days", delayDefaults.MinDelayDays)
	v.SetDefault("cycle.max_delay_days", delayDefaults.MaxDelayDays)

	reminderDefaults := reminder.DefaultConfig()
	v.SetDefault("reminder.max_per_day", reminderDefaults.MaxPerDay)
	v.SetDefault("reminder.max_reschedules", reminderDefaults.MaxReschedules)
	v.SetDefault("reminder.exhaust_policy", string(reminderDefaults.ExhaustPolicy))

	schedulerDefaults := schedule.DefaultConfig()
	v.SetDefault("scheduler.expression", schedulerDefaults.Expression)
	v.SetDefault("scheduler.worker_count", schedulerDefaults.WorkerCount)
	v.SetDefault("notifier.channel", "log")
	v.SetDefault("notifier.retry_attempts", 3)
	v.SetDefault("stats.cache_ttl", 5*time.Minute)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "repeatwise")
	v.SetDefault("database.username", "user")

	// Secrets come from the environment only, never the config file.
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("notifier.webhook_url", "REPEATWISE_WEBHOOK_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind REPEATWISE_WEBHOOK_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	if err := cfg.SRS.Validate(); err != nil {
		return nil, fmt.Errorf("invalid srs configuration: %w", err)
	}
	if err := cfg.Cycle.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cycle configuration: %w", err)
	}
	if err := cfg.Reminder.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reminder configuration: %w", err)
	}

	return &cfg, nil
}
