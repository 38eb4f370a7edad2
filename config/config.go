package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	Attestation AttestationConfig `mapstructure:"attestation"`
	Access      AccessConfig      `mapstructure:"access"`
	Dispute     DisputeConfig     `mapstructure:"dispute"`
	Facilitator FacilitatorConfig `mapstructure:"facilitator"`
	Platform    PlatformConfig    `mapstructure:"platform"`
	Backends    BackendsConfig    `mapstructure:"backends"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	ProvisionalExpiry time.Duration `mapstructure:"provisional_expiry"`
	FullExpiry        time.Duration `mapstructure:"full_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"` // Empty = event publishing disabled
	Topic   string   `mapstructure:"topic"`
}

type AttestationConfig struct {
	Key string `mapstructure:"key"` // Hex-encoded MAC key
}

type AccessConfig struct {
	ProvisionalWindow time.Duration `mapstructure:"provisional_window"`
	SweepInterval     time.Duration `mapstructure:"sweep_interval"`
}

type DisputeConfig struct {
	GraceWindowMs      int64 `mapstructure:"grace_window_ms"`      // Negative window treated as a close call
	LatencyThresholdMs int64 `mapstructure:"latency_threshold_ms"` // Above this, a close rejection is a latency fault
}

type FacilitatorConfig struct {
	AgentID string `mapstructure:"agent_id"`
	Payee   string `mapstructure:"payee"`
}

type PlatformConfig struct {
	BaseURL string        `mapstructure:"base_url"` // Empty = in-process simulated platform
	Timeout time.Duration `mapstructure:"timeout"`
}

type BackendsConfig struct {
	PixDelay      time.Duration `mapstructure:"pix_delay"`
	CardDelay     time.Duration `mapstructure:"card_delay"`
	CardMaxAmount int64         `mapstructure:"card_max_amount"` // 0 = no limit
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BSG_ (Bet Settlement
// Gateway). Nested keys use underscore: BSG_DATABASE_HOST, BSG_JWT_SECRET.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "bet_settlement")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.provisional_expiry", "10m")
	v.SetDefault("jwt.full_expiry", "720h") // 30 days
	v.SetDefault("jwt.issuer", "bet-settlement-gateway")
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "settlement.events")
	v.SetDefault("attestation.key", "")
	v.SetDefault("access.provisional_window", "10m")
	v.SetDefault("access.sweep_interval", "30s")
	v.SetDefault("dispute.grace_window_ms", 100)
	v.SetDefault("dispute.latency_threshold_ms", 100)
	v.SetDefault("facilitator.agent_id", "0xFAC1117A70400000000000000000000000000001")
	v.SetDefault("facilitator.payee", "operator-house-account")
	v.SetDefault("platform.base_url", "")
	v.SetDefault("platform.timeout", "2s")
	v.SetDefault("backends.pix_delay", "150ms")
	v.SetDefault("backends.card_delay", "800ms")
	v.SetDefault("backends.card_max_amount", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BSG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("BSG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
