package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is read from the environment
type Config struct {
	Host           string        `env:"KLONDIKE_HOST"`
	Port           int           `env:"KLONDIKE_PORT,default=8000,strict"`
	LogLevel       string        `env:"KLONDIKE_LOG_LEVEL,default=info"`
	Development    bool          `env:"KLONDIKE_DEV,default=false,strict"`
	AllowedOrigins string        `env:"KLONDIKE_ALLOWED_ORIGINS,default=*"`
	GameTTL        time.Duration `env:"KLONDIKE_GAME_TTL,default=30m,strict"`
}

// Load decodes the environment into a Config
func Load() (Config, error) {
	var cfg Config
	err := envdecode.Decode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}

	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "*"
	}
	if cfg.GameTTL == 0 {
		cfg.GameTTL = 30 * time.Minute
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}
	if cfg.GameTTL < 0 {
		return Config{}, fmt.Errorf("game ttl %s is negative", cfg.GameTTL)
	}

	return cfg, nil
}

// Addr is the address the server listens on
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Origins splits the allowed origins list
func (c Config) Origins() []string {
	origins := []string{}
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// NewLogger builds the zap logger described by the config
func NewLogger(c Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
