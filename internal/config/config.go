package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
type Config struct {
	Telegram TelegramConfig `toml:"telegram"`
	Booking  BookingConfig  `toml:"booking"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
}

// TelegramConfig настройки Telegram-транспорта
type TelegramConfig struct {
	// TokenEnv имя переменной окружения с токеном бота
	// Сам токен в конфиге не хранится
	TokenEnv    string `toml:"token_env"`
	AdminChatID int64  `toml:"admin_chat_id"`
	PollTimeout int    `toml:"poll_timeout"` // секунды long polling
}

// BookingConfig параметры генерации слотов и флоу записи
type BookingConfig struct {
	Timezone        string `toml:"timezone"`
	OpenHour        int    `toml:"open_hour"`
	CloseHour       int    `toml:"close_hour"`
	SlotStepMinutes int    `toml:"slot_step_minutes"`
	PageSize        int    `toml:"page_size"`
	LookaheadDays   int    `toml:"lookahead_days"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Port        int    `toml:"port"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки подключения к PostgreSQL для журнала истории
// Журнал опционален: при enabled = false бот работает полностью in-memory
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Значения по умолчанию для [booking]
const (
	DefaultOpenHour        = 9
	DefaultCloseHour       = 24
	DefaultSlotStepMinutes = 30
	DefaultPageSize        = 9
	DefaultLookaheadDays   = 3
	DefaultPollTimeout     = 30
)

// Load загружает конфигурацию из TOML-файла и применяет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Telegram.TokenEnv == "" {
		c.Telegram.TokenEnv = "BOT_TOKEN"
	}
	if c.Telegram.PollTimeout == 0 {
		c.Telegram.PollTimeout = DefaultPollTimeout
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "UTC"
	}
	if c.Booking.OpenHour == 0 {
		c.Booking.OpenHour = DefaultOpenHour
	}
	if c.Booking.CloseHour == 0 {
		c.Booking.CloseHour = DefaultCloseHour
	}
	if c.Booking.SlotStepMinutes == 0 {
		c.Booking.SlotStepMinutes = DefaultSlotStepMinutes
	}
	if c.Booking.PageSize == 0 {
		c.Booking.PageSize = DefaultPageSize
	}
	if c.Booking.LookaheadDays == 0 {
		c.Booking.LookaheadDays = DefaultLookaheadDays
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "salon-bot"
	}
}

func (c *Config) validate() error {
	if c.Telegram.AdminChatID == 0 {
		return fmt.Errorf("telegram.admin_chat_id is required")
	}
	if c.Booking.OpenHour < 0 || c.Booking.OpenHour > 23 {
		return fmt.Errorf("booking.open_hour must be in [0, 23], got %d", c.Booking.OpenHour)
	}
	if c.Booking.CloseHour < 1 || c.Booking.CloseHour > 24 {
		return fmt.Errorf("booking.close_hour must be in [1, 24], got %d", c.Booking.CloseHour)
	}
	if c.Booking.OpenHour >= c.Booking.CloseHour {
		return fmt.Errorf("booking.open_hour (%d) must be before close_hour (%d)",
			c.Booking.OpenHour, c.Booking.CloseHour)
	}
	if c.Booking.SlotStepMinutes <= 0 || c.Booking.SlotStepMinutes > 60 {
		return fmt.Errorf("booking.slot_step_minutes must be in (0, 60], got %d", c.Booking.SlotStepMinutes)
	}
	if c.Booking.PageSize <= 0 {
		return fmt.Errorf("booking.page_size must be positive, got %d", c.Booking.PageSize)
	}
	if c.Booking.LookaheadDays <= 0 {
		return fmt.Errorf("booking.lookahead_days must be positive, got %d", c.Booking.LookaheadDays)
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("booking.timezone %q is not a valid location: %w", c.Booking.Timezone, err)
	}
	return nil
}
