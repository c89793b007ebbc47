package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Cookie     CookieConfig

	// Nylas Email App specifics
	Nylas   NylasConfig
	Webhook WebhookConfig
	Events  EventsConfig
	Session SessionConfig

	// ServerURL is the public base URL of this app (webhook registration,
	// OAuth redirect URI).
	ServerURL string

	// Email is the recipient of the demo test email.
	Email string
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CookieConfig struct {
	Domain string
	Secure bool
}

type NylasConfig struct {
	APIKey   string
	APIURI   string
	ClientID string
	GrantID  string // optional override bypassing the session
}

type WebhookConfig struct {
	Secret          string
	RateLimitPerMin int
}

type EventsConfig struct {
	Dir string // directory holding one JSON file per delivery
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// Environment variables map through the "." → "_" replacer, so nylas.api_key
// is NYLAS_API_KEY, webhook.secret is WEBHOOK_SECRET, server.url is
// SERVER_URL, and so on.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")

	// Nylas provider
	cfg.Nylas.APIKey = viper.GetString("nylas.api_key")
	cfg.Nylas.APIURI = viper.GetString("nylas.api_uri")
	cfg.Nylas.ClientID = viper.GetString("nylas.client_id")
	cfg.Nylas.GrantID = viper.GetString("nylas.grant_id")

	// Public URL and demo email
	cfg.ServerURL = viper.GetString("server.url")
	cfg.Email = viper.GetString("email")

	// Webhook
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Event storage
	cfg.Events.Dir = viper.GetString("events.dir")

	// Sessions
	ttl, err := time.ParseDuration(viper.GetString("session.ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid session.ttl: %w", err)
	}
	cfg.Session.TTL = ttl
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5010)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("nylas.api_uri", "https://api.us.nylas.com")
	viper.SetDefault("webhook.rate_limit_per_min", 120)
	viper.SetDefault("events.dir", "requests/events")
	viper.SetDefault("session.ttl", "336h") // 14 days, matches the cookie
	viper.SetDefault("session.max_sessions", 10000)
}
