package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
[telegram]
token_env = "SALON_BOT_TOKEN"
admin_chat_id = -4717273516
poll_timeout = 60

[booking]
timezone = "Europe/Moscow"
open_hour = 10
close_hour = 22
slot_step_minutes = 30
page_size = 6
lookahead_days = 5

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
port = 9090
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "SALON_BOT_TOKEN", cfg.Telegram.TokenEnv)
	assert.Equal(t, int64(-4717273516), cfg.Telegram.AdminChatID)
	assert.Equal(t, 60, cfg.Telegram.PollTimeout)
	assert.Equal(t, "Europe/Moscow", cfg.Booking.Timezone)
	assert.Equal(t, 10, cfg.Booking.OpenHour)
	assert.Equal(t, 22, cfg.Booking.CloseHour)
	assert.Equal(t, 6, cfg.Booking.PageSize)
	assert.Equal(t, 5, cfg.Booking.LookaheadDays)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[telegram]
admin_chat_id = -4717273516
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "BOT_TOKEN", cfg.Telegram.TokenEnv)
	assert.Equal(t, DefaultPollTimeout, cfg.Telegram.PollTimeout)
	assert.Equal(t, "UTC", cfg.Booking.Timezone)
	assert.Equal(t, DefaultOpenHour, cfg.Booking.OpenHour)
	assert.Equal(t, DefaultCloseHour, cfg.Booking.CloseHour)
	assert.Equal(t, DefaultSlotStepMinutes, cfg.Booking.SlotStepMinutes)
	assert.Equal(t, DefaultPageSize, cfg.Booking.PageSize)
	assert.Equal(t, DefaultLookaheadDays, cfg.Booking.LookaheadDays)
	assert.Equal(t, "salon-bot", cfg.Metrics.ServiceName)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no_admin_chat", `
[booking]
timezone = "UTC"
`},
		{"open_after_close", `
[telegram]
admin_chat_id = -1

[booking]
open_hour = 22
close_hour = 10
`},
		{"bad_timezone", `
[telegram]
admin_chat_id = -1

[booking]
timezone = "Mars/Olympus"
`},
		{"bad_step", `
[telegram]
admin_chat_id = -1

[booking]
slot_step_minutes = 90
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "salon",
		Password: "secret",
		DBName:   "salon_bot",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=salon password=secret dbname=salon_bot sslmode=disable", d.DSN())
}
