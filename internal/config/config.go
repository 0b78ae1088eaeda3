package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Notifier  NotifierConfig  `mapstructure:"notifier"`
	Sweep     SweepConfig     `mapstructure:"sweep"`
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

// SchedulerConfig holds spaced-repetition defaults. Interval sequences
// are day offsets relative to the reviewed session's date.
type SchedulerConfig struct {
	FreeIntervals    []int `mapstructure:"free_intervals" validate:"min=1,dive,min=1"`
	PremiumIntervals []int `mapstructure:"premium_intervals" validate:"min=1,dive,min=1"`
	PreferredHour    int   `mapstructure:"preferred_hour" validate:"min=0,max=23"`
	MaxJitterMinutes int   `mapstructure:"max_jitter_minutes" validate:"min=0"`
	HistoryWindow    int   `mapstructure:"history_window" validate:"min=1,max=50"`
}

type NotifierConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	Token          string `mapstructure:"token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type SweepConfig struct {
	CronSpec  string `mapstructure:"cron_spec"`
	BatchSize int    `mapstructure:"batch_size" validate:"min=1"`
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
		v.AddConfigPath("$HOME/.config/studyflow")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "studyflow")
	v.SetDefault("database.username", "user")
	v.SetDefault("scheduler.free_intervals", []int{1, 3, 7})
	v.SetDefault("scheduler.premium_intervals", []int{1, 3, 7, 14, 30, 60})
	v.SetDefault("scheduler.preferred_hour", 9)
	v.SetDefault("scheduler.max_jitter_minutes", 30)
	v.SetDefault("scheduler.history_window", 50)
	v.SetDefault("notifier.timeout_seconds", 10)
	v.SetDefault("sweep.cron_spec", "*/15 * * * *")
	v.SetDefault("sweep.batch_size", 100)

	// Secrets come from the environment only, never from the config file.
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("notifier.token", "NOTIFIER_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind NOTIFIER_TOKEN environment variable: %w", err)
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

	return &cfg, nil
}
