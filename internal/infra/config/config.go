package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseDriver string
	DatabaseURL    string

	JWTSecret      string
	Issuer         string
	AccessTokenTTL time.Duration
	PasswordPepper string

	HTTPAddress     string
	MetricsAddress  string
	HTTPSCertFile   string
	HTTPSKeyFile    string
	ShutdownTimeout time.Duration

	AllowedOrigins   []string
	AllowCredentials bool

	LogLevel string
}

// TLSEnabled reports whether both certificate and key are configured.
func (c *Config) TLSEnabled() bool {
	return c.HTTPSCertFile != "" && c.HTTPSKeyFile != ""
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("ACCESS_TOKEN_TTL", time.Hour)
	v.SetDefault("HTTP_ADDRESS", ":5000")
	v.SetDefault("METRICS_ADDRESS", ":9090")
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("LOG_LEVEL", "debug")

	v.AutomaticEnv()
	for _, key := range []string{
		"DATABASE_URL", "JWT_SECRET", "JWT_ISSUER", "PASSWORD_PEPPER",
		"HTTPS_CERT_FILE", "HTTPS_KEY_FILE", "ALLOWED_ORIGINS", "ALLOW_CREDENTIALS",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	cfg := &Config{
		DatabaseDriver:   strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		Issuer:           v.GetString("JWT_ISSUER"),
		AccessTokenTTL:   v.GetDuration("ACCESS_TOKEN_TTL"),
		PasswordPepper:   v.GetString("PASSWORD_PEPPER"),
		HTTPAddress:      v.GetString("HTTP_ADDRESS"),
		MetricsAddress:   v.GetString("METRICS_ADDRESS"),
		HTTPSCertFile:    v.GetString("HTTPS_CERT_FILE"),
		HTTPSKeyFile:     v.GetString("HTTPS_KEY_FILE"),
		ShutdownTimeout:  v.GetDuration("SHUTDOWN_TIMEOUT"),
		AllowedOrigins:   splitList(v.GetString("ALLOWED_ORIGINS")),
		AllowCredentials: v.GetBool("ALLOW_CREDENTIALS"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.DatabaseURL == "":
		return fmt.Errorf("DATABASE_URL is not set")
	case c.JWTSecret == "":
		return fmt.Errorf("JWT_SECRET is not set")
	case c.AccessTokenTTL <= 0:
		return fmt.Errorf("ACCESS_TOKEN_TTL must be positive, got %s", c.AccessTokenTTL)
	case c.DatabaseDriver != "postgres" && c.DatabaseDriver != "sqlite":
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	return nil
}

// splitList accepts both "a,b" and a JSON-ish `["a","b"]`.
func splitList(raw string) []string {
	raw = strings.Trim(strings.TrimSpace(raw), "[]")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
