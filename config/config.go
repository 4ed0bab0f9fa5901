package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Postgres PostgresConfig
	Redis    RedisConfig
	Webhook  WebhookConfig
	Provider ProviderConfig
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

// PostgresConfig points at the tracker database (tasks, users, project roles).
// The bridge only ever reads from it.
type PostgresConfig struct {
	URL string
}

// RedisConfig points at the internal event bus.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string // pub/sub channel domain events are published on
}

type WebhookConfig struct {
	Token           string
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// ProviderConfig tunes provider-facing texts on emitted events.
type ProviderConfig struct {
	Name                 string // display name used in generated comment footers
	IssueTitleWithNumber bool   // prefix created task titles with the issue number
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Tracker database
	cfg.Postgres.URL = viper.GetString("postgres.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.URL = dbURL
	}
	if cfg.Postgres.URL == "" {
		return nil, fmt.Errorf("postgres.url is required")
	}

	// Event bus
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.Channel = viper.GetString("redis.channel")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}

	// Webhook endpoint
	cfg.Webhook.Token = viper.GetString("webhook.token")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	if webhookToken := viper.GetString("webhook_token"); webhookToken != "" {
		cfg.Webhook.Token = webhookToken
	}
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	if cfg.Webhook.Token == "" {
		return nil, fmt.Errorf("webhook.token is required")
	}

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	// Provider texts
	cfg.Provider.Name = viper.GetString("provider.name")
	cfg.Provider.IssueTitleWithNumber = viper.GetBool("provider.issue_title_with_number")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.channel", "tracker.events")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("provider.name", "Github")
}
