package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Workspace Agent specifics
	Google  GoogleConfig
	Actions ActionsConfig
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

// GoogleConfig configures credentials and API behavior.
type GoogleConfig struct {
	CredentialsPath string
	TokenDir        string
	CalendarID      string
	RedirectURL     string
	// EventUTCOffsetHours is the fixed offset used to interpret naive
	// local timestamps in event creation. Historically hard-wired to 7;
	// kept configurable instead of generalized.
	EventUTCOffsetHours int
}

// ActionsConfig guards the action-dispatch endpoint.
type ActionsConfig struct {
	RateLimitPerMin int
	AllowedIPs      []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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

	// Google APIs
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.TokenDir = viper.GetString("google.token_dir")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.RedirectURL = viper.GetString("google.redirect_url")
	cfg.Google.EventUTCOffsetHours = viper.GetInt("google.event_utc_offset_hours")
	if creds := viper.GetString("google_credentials"); creds != "" {
		cfg.Google.CredentialsPath = creds
	}

	// Actions endpoint
	cfg.Actions.RateLimitPerMin = viper.GetInt("actions.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("actions.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Actions.AllowedIPs = ips

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
	viper.SetDefault("google.credentials_path", "credentials.json")
	viper.SetDefault("google.token_dir", ".")
	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("google.redirect_url", "http://localhost:8080/oauth2callback")
	viper.SetDefault("google.event_utc_offset_hours", 7)
	viper.SetDefault("actions.rate_limit_per_min", 60)
}
