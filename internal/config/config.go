package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken     string        `envconfig:"BOT_TOKEN" required:"true"`
	DBPath       string        `envconfig:"DB_PATH" default:"./data/birthday.db"`
	BotTZ        string        `envconfig:"BOT_TZ" default:"Europe/Moscow"`
	RunMode      string        `envconfig:"RUN_MODE" default:"polling"`  // polling|webhook
	HTTPAddr     string        `envconfig:"HTTP_ADDR" default:":8080"`   // webhook + scheduler trigger + healthz
	RefreshEvery time.Duration `envconfig:"REFRESH_EVERY" default:"5s"`  // live countdown cadence (polling mode)
	NotifyAt     string        `envconfig:"NOTIFY_AT" default:"09:00"`   // daily notification time, local HH:MM
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`    // debug|info|warn|error
}

// Load reads environment variables into Config. A .env file, if
// present, is loaded first.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
