package config

import (
	"errors"
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Identity modes.
const (
	IdentityUpstream = "upstream"
	IdentityJWT      = "jwt"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Clinic API.
	ClinicAPIURL            string `mapstructure:"CLINIC_API_URL"`
	ClinicAPITimeoutSeconds int    `mapstructure:"CLINIC_API_TIMEOUT_SECONDS"`
	ClinicTimezone          string `mapstructure:"CLINIC_TIMEZONE"`
	SlotIntervalMinutes     int    `mapstructure:"SLOT_INTERVAL_MINUTES"`

	// Identity.
	IdentityMode            string `mapstructure:"IDENTITY_MODE"`
	JWTSecret               string `mapstructure:"JWT_SECRET"`
	IdentityCacheTTLSeconds int    `mapstructure:"IDENTITY_CACHE_TTL_SECONDS"`
	BookingGuardTTLSeconds  int    `mapstructure:"BOOKING_GUARD_TTL_SECONDS"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Audit trail.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	AuditEnabled bool   `mapstructure:"AUDIT_ENABLED"`
}

var AppConfig Config

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("CLINIC_API_URL", "http://localhost:3000")
	v.SetDefault("CLINIC_API_TIMEOUT_SECONDS", 10)
	v.SetDefault("CLINIC_TIMEZONE", "Asia/Jakarta")
	v.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	v.SetDefault("IDENTITY_MODE", IdentityUpstream)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("IDENTITY_CACHE_TTL_SECONDS", 600)
	v.SetDefault("BOOKING_GUARD_TTL_SECONDS", 120)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_AUTH_DB", 1)
	v.SetDefault("REDIS_QUEUE_DB", 2)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "klinik")
	v.SetDefault("AUDIT_ENABLED", true)
}

// Load reads config.yaml (from "." or "./config") and the environment into a Config.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig fills AppConfig from the global viper instance and exits on error.
func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Validate rejects settings the gateway cannot run with.
func (c Config) Validate() error {
	switch c.Env {
	case "development", "production", "test":
	default:
		return fmt.Errorf("config: unknown ENV %q", c.Env)
	}
	switch c.IdentityMode {
	case IdentityUpstream:
	case IdentityJWT:
		if c.JWTSecret == "" {
			return errors.New("config: JWT_SECRET is required when IDENTITY_MODE=jwt")
		}
	default:
		return fmt.Errorf("config: unknown IDENTITY_MODE %q", c.IdentityMode)
	}
	if c.ClinicAPIURL == "" {
		return errors.New("config: CLINIC_API_URL is required")
	}
	if c.SlotIntervalMinutes <= 0 || c.SlotIntervalMinutes > 24*60 {
		return fmt.Errorf("config: SLOT_INTERVAL_MINUTES must be between 1 and 1440, got %d", c.SlotIntervalMinutes)
	}
	if _, err := time.LoadLocation(c.ClinicTimezone); err != nil {
		return fmt.Errorf("config: CLINIC_TIMEZONE: %w", err)
	}
	return nil
}

// Location returns the clinic's time zone. Validate has already checked it loads.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ClinicTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) ClinicAPITimeout() time.Duration {
	return time.Duration(c.ClinicAPITimeoutSeconds) * time.Second
}

func (c Config) IdentityCacheTTL() time.Duration {
	return time.Duration(c.IdentityCacheTTLSeconds) * time.Second
}

func (c Config) BookingGuardTTL() time.Duration {
	return time.Duration(c.BookingGuardTTLSeconds) * time.Second
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
