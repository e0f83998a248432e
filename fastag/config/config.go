package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag"
)

var logger = logrus.WithField("component", "fastag.config")

// Config is the immutable process-wide configuration: one deployment
// selects one environment, one active key pair and one channel/agent
// identity at startup. Nothing here is mutated after Load.
//
// A second key pair (ENCRYPTION_KEY_new and its paired subscription key)
// exists in the upstream contract but was never wired into the active
// path; it is deliberately not loaded here. Enabling it without backend
// coordination silently corrupts every response.
type Config struct {
	Environment     string `mapstructure:"FASTAG_ENVIRONMENT"`
	BaseURLOverride string `mapstructure:"FASTAG_BASE_URL"`

	EncryptionKey   string `mapstructure:"FASTAG_ENCRYPTION_KEY"`
	SubscriptionKey string `mapstructure:"FASTAG_SUBSCRIPTION_KEY"`

	Channel string `mapstructure:"FASTAG_CHANNEL"`
	AgentID string `mapstructure:"FASTAG_AGENT_ID"`

	Simulation  bool          `mapstructure:"-"`
	HTTPTimeout time.Duration `mapstructure:"-"`

	RedisAddr     string `mapstructure:"FASTAG_REDIS_ADDR"`
	RedisPassword string `mapstructure:"FASTAG_REDIS_PASSWORD"`
}

// Env resolves the configured environment name.
func (c *Config) Env() fastag.Environment {
	return fastag.ParseEnvironment(c.Environment)
}

// BaseURL returns the aggregator host: the override when set (tests,
// local stubs), otherwise the environment's fixed host.
func (c *Config) BaseURL() string {
	if c.BaseURLOverride != "" {
		return strings.TrimRight(c.BaseURLOverride, "/")
	}
	return c.Env().BaseURL()
}

// Load reads configuration from a .env file (when present) and the
// process environment. Environment variables win over file values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debugf("no .env file loaded: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("FASTAG_ENVIRONMENT", "uat")
	v.SetDefault("FASTAG_HTTP_TIMEOUT", "30s")
	v.SetDefault("FASTAG_REDIS_ADDR", "localhost:6379")
	v.SetDefault("FASTAG_SIMULATION", false)

	for _, key := range []string{
		"FASTAG_ENVIRONMENT", "FASTAG_BASE_URL",
		"FASTAG_ENCRYPTION_KEY", "FASTAG_SUBSCRIPTION_KEY",
		"FASTAG_CHANNEL", "FASTAG_AGENT_ID",
		"FASTAG_SIMULATION", "FASTAG_HTTP_TIMEOUT",
		"FASTAG_REDIS_ADDR", "FASTAG_REDIS_PASSWORD",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// env values arrive as strings; read the typed ones through viper
	cfg.Simulation = v.GetBool("FASTAG_SIMULATION")
	cfg.HTTPTimeout = v.GetDuration("FASTAG_HTTP_TIMEOUT")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.EncryptionKey) != 32 {
		return fmt.Errorf("FASTAG_ENCRYPTION_KEY must be exactly 32 characters, got %d", len(c.EncryptionKey))
	}
	if c.SubscriptionKey == "" {
		return fmt.Errorf("FASTAG_SUBSCRIPTION_KEY is required")
	}
	if c.Channel == "" || c.AgentID == "" {
		return fmt.Errorf("FASTAG_CHANNEL and FASTAG_AGENT_ID are required")
	}
	return nil
}
