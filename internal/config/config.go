package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for the server configuration.
const (
	DefaultAddr            = ":8080"
	DefaultRate            = 5.0
	DefaultBurst           = 10
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `yaml:"addr" validate:"required"`

	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string `yaml:"tls_cert" validate:"required_with=TLSKey"`
	TLSKey  string `yaml:"tls_key" validate:"required_with=TLSCert"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`

	// StaticDir, when set, is served at "/".
	StaticDir string `yaml:"static_dir"`
}

// AuthConfig protects the tool routes. The key and hash normally come from
// the environment rather than the file.
type AuthConfig struct {
	Enabled      bool   `yaml:"enabled"`
	TokenKey     string `yaml:"-" validate:"required_if=Enabled true"`
	PasswordHash string `yaml:"-" validate:"required_if=Enabled true"`
}

type RateLimitConfig struct {
	// Rate is the sustained requests per second per client IP.
	Rate  float64 `yaml:"rate" validate:"gt=0"`
	Burst int     `yaml:"burst" validate:"gte=1"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s ServerConfig) TLS() bool { return s.TLSCert != "" && s.TLSKey != "" }

var validate = validator.New()

// Load builds the configuration from, in increasing precedence: defaults,
// the YAML file at path (optional, skipped when path is empty), and the
// environment. A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		RateLimit: RateLimitConfig{
			Rate:  DefaultRate,
			Burst: DefaultBurst,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("OSDAG_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("OSDAG_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("OSDAG_AUTH_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("OSDAG_AUTH_ENABLED: %w", err)
		}
		cfg.Auth.Enabled = enabled
	}
	cfg.Auth.TokenKey = os.Getenv("TOKEN_KEY")
	cfg.Auth.PasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	return nil
}
