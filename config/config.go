package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	General  GeneralConfig  `toml:"general"`
	Defaults DefaultsConfig `toml:"defaults"`
	Slack    SlackConfig    `toml:"slack"`
}

type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
}

// DefaultsConfig fills fields a caller leaves out of a command. The
// analytics packages never read it.
type DefaultsConfig struct {
	DaysToExpiry     int     `toml:"days_to_expiry"`
	Volatility       float64 `toml:"volatility"`
	InterestRate     float64 `toml:"interest_rate"`
	OptionType       string  `toml:"option_type"`
	StrikeWidth      float64 `toml:"strike_width"`
	BackDaysToExpiry int     `toml:"back_days_to_expiry"`
}

type SlackConfig struct {
	Debug    bool   `toml:"debug"`
	AppToken string `toml:"-"`
	BotToken string `toml:"-"`
}

// Load reads path over DefaultConfig. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// LoadEnv pulls Slack tokens from the environment, after loading any of the
// given .env files that exist.
func (c *Config) LoadEnv(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return fmt.Errorf("loading env: %w", err)
		}
	}

	c.Slack.AppToken = os.Getenv("SLACK_APP_TOKEN")
	c.Slack.BotToken = os.Getenv("SLACK_BOT_TOKEN")
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Defaults: DefaultsConfig{
			DaysToExpiry:     30,
			Volatility:       25,
			InterestRate:     2.0,
			OptionType:       "call",
			StrikeWidth:      5,
			BackDaysToExpiry: 30,
		},
	}
}
