package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

const (
	DefaultBoardSize = 7
	DefaultPlayer1   = "Player 1"
	DefaultPlayer2   = "Player 2"
)

// Config holds settings that can be given ahead of time. A zero BoardSize
// or an empty player name means the console asks for it.
type Config struct {
	BoardSize        int      `env:"BOARD_SIZE"`
	Player1Name      string   `env:"PLAYER1_NAME"`
	Player2Name      string   `env:"PLAYER2_NAME"`
	MaxInputAttempts int      `env:"MAX_INPUT_ATTEMPTS" envDefault:"5"`
	NoColor          Presence `env:"NO_COLOR"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat        string   `env:"LOG_FORMAT" envDefault:"text"`
	LogFile          string   `env:"LOG_FILE"`
}

// Presence is true when its variable is set to any non-empty value, the
// way NO_COLOR is defined.
type Presence bool

func (p *Presence) UnmarshalText(text []byte) error {
	*p = len(text) > 0
	return nil
}

// LoadConfig reads the environment. Call Validate once overrides such as
// command-line flags have been applied.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks values after environment parsing and flag overrides.
func (c *Config) Validate() error {
	if c.BoardSize != 0 && (c.BoardSize < domain.MinSize || c.BoardSize > domain.MaxSize) {
		return fmt.Errorf("BOARD_SIZE=%d: %w", c.BoardSize, domain.ErrInvalidSize)
	}
	if c.MaxInputAttempts < 1 {
		return fmt.Errorf("MAX_INPUT_ATTEMPTS must be at least 1, got %d", c.MaxInputAttempts)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}
