package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	OpenAIKey    string `env:"OPENAI_API_KEY,required"`

	// OwnerID is the operator: the only user allowed to toggle gentle mode
	// or pin the bot to a channel, and the one who gets guild-limit DMs.
	OwnerID string `env:"OWNER_ID,required"`

	StoragePath string `env:"STORAGE_PATH" envDefault:"datastore.json"`

	MaxGuilds       int `env:"MAX_GUILDS" envDefault:"2"`
	DrawCooldownSec int `env:"DRAW_COOLDOWN" envDefault:"30"`
	HistoryWindow   int `env:"HISTORY_WINDOW" envDefault:"10"`

	ChatModel    string `env:"CHAT_MODEL" envDefault:"gpt-4.1"`
	ChatAltModel string `env:"CHAT_ALT_MODEL" envDefault:"o3-mini"`
	FactModel    string `env:"FACT_MODEL" envDefault:"gpt-4.1-nano"`
	ImageModel   string `env:"IMAGE_MODEL" envDefault:"dall-e-2"`

	// ResetCron schedules the daily conversation wipe (process-local time).
	ResetCron string `env:"RESET_CRON" envDefault:"0 4 * * *"`

	InitSlashCommands bool `env:"INIT_SLASH_COMMANDS" envDefault:"true"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) DrawCooldown() time.Duration {
	return time.Duration(c.DrawCooldownSec) * time.Second
}
