package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Deployment modes.
const (
	ModeWebhook = "webhook" // HTTP server: platform delivers updates and cron triggers
	ModePoll    = "poll"    // long polling plus in-process cron
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string  `mapstructure:"env"`       // current application environment (local, dev, prod etc)
	Mode        string  `mapstructure:"mode"`      // webhook or poll
	HTTPAddr    string  `mapstructure:"http_addr"` // listen address in webhook mode
	CronSpec    string  `mapstructure:"cron_spec"` // dispatch schedule in poll mode
	BotToken    string  `mapstructure:"-"`         // Telegram bot token loaded from environment
	ChatID      int64   `mapstructure:"-"`         // group chat the MCQs are posted to
	AdminChatID int64   `mapstructure:"-"`         // chat allowed to ingest questions
	CronSecret  string  `mapstructure:"-"`         // bearer secret for the dispatch endpoint
	Storage     Storage `mapstructure:"storage"`   // question store section
}

// Storage selects and configures the question store backend.
type Storage struct {
	Driver  string `mapstructure:"driver"`   // csv, sqlite or postgres
	CSVPath string `mapstructure:"csv_path"` // path to the question table (csv driver)
	DSN     string `mapstructure:"-"`        // connection string loaded from environment (sql drivers)
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("mode", ModePoll)
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("cron_spec", "0 * * * *") // hourly
	v.SetDefault("storage.driver", "csv")
	v.SetDefault("storage.csv_path", "assets/data/neet-pg-mcqs.csv")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_bot_token", "TELEGRAM_BOT_TOKEN")
	_ = v.BindEnv("telegram_chat_id", "TELEGRAM_CHAT_ID")
	_ = v.BindEnv("admin_chat_id", "ADMIN_CHAT_ID")
	_ = v.BindEnv("cron_secret", "CRON_SECRET")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables and fail fast on gaps.
	cfg.BotToken = v.GetString("telegram_bot_token")
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_BOT_TOKEN", ErrMissingEnvironmentVariables)
	}

	cfg.ChatID = v.GetInt64("telegram_chat_id")
	if cfg.ChatID == 0 {
		return nil, fmt.Errorf("%w: TELEGRAM_CHAT_ID", ErrMissingEnvironmentVariables)
	}

	cfg.AdminChatID = v.GetInt64("admin_chat_id")
	if cfg.AdminChatID == 0 {
		return nil, fmt.Errorf("%w: ADMIN_CHAT_ID", ErrMissingEnvironmentVariables)
	}

	cfg.CronSecret = v.GetString("cron_secret")
	if cfg.Mode == ModeWebhook && cfg.CronSecret == "" {
		return nil, fmt.Errorf("%w: CRON_SECRET", ErrMissingEnvironmentVariables)
	}

	cfg.Storage.DSN = v.GetString("database_url")
	if cfg.Storage.Driver == "postgres" && cfg.Storage.DSN == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
	}

	return &cfg, nil
}
