// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
	Brokerage     BrokerageConfig
	DatabaseURL   string
	Redis         RedisConfig
	Kafka         KafkaConfig
	AuditHashKey  string
	DraftTTL      time.Duration
	LogFormat     string
	LogLevel      string
}

// BrokerageConfig points at the brokerage backend.
type BrokerageConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedisConfig configures the draft cache. An empty URL disables Redis and
// drafts are kept in memory.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the audit topic. No brokers means audit events go
// to the log only.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DEMATKYC_ADDR", ":8080")
	// development default; override in every deployed environment
	v.SetDefault("JWT_SIGNING_KEY", "dev-secret-key-change-in-production")
	v.SetDefault("JWT_ISSUER", "brokerage-auth")
	v.SetDefault("JWT_AUDIENCE", "dematkyc")
	v.SetDefault("BROKERAGE_BASE_URL", "http://localhost:9000")
	v.SetDefault("BROKERAGE_TIMEOUT", "10s")
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 2)
	v.SetDefault("REDIS_DIAL_TIMEOUT", "5s")
	v.SetDefault("REDIS_READ_TIMEOUT", "3s")
	v.SetDefault("REDIS_WRITE_TIMEOUT", "3s")
	v.SetDefault("AUDIT_TOPIC", "nomination-audit")
	v.SetDefault("DRAFT_TTL", "72h")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_LEVEL", "info")
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return load(v)
}

func load(v *viper.Viper) (Server, error) {
	cfg := Server{
		Addr:          v.GetString("DEMATKYC_ADDR"),
		JWTSigningKey: v.GetString("JWT_SIGNING_KEY"),
		JWTIssuer:     v.GetString("JWT_ISSUER"),
		JWTAudience:   v.GetString("JWT_AUDIENCE"),
		Brokerage: BrokerageConfig{
			BaseURL: strings.TrimRight(v.GetString("BROKERAGE_BASE_URL"), "/"),
			Timeout: v.GetDuration("BROKERAGE_TIMEOUT"),
		},
		DatabaseURL: v.GetString("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          v.GetString("REDIS_URL"),
			PoolSize:     v.GetInt("REDIS_POOL_SIZE"),
			MinIdleConns: v.GetInt("REDIS_MIN_IDLE_CONNS"),
			DialTimeout:  v.GetDuration("REDIS_DIAL_TIMEOUT"),
			ReadTimeout:  v.GetDuration("REDIS_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("REDIS_WRITE_TIMEOUT"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("AUDIT_TOPIC"),
		},
		AuditHashKey: v.GetString("AUDIT_HASH_KEY"),
		DraftTTL:     v.GetDuration("DRAFT_TTL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		LogLevel:     v.GetString("LOG_LEVEL"),
	}
	return cfg, cfg.validate()
}

func (c Server) validate() error {
	var errs []error
	if c.JWTSigningKey == "" {
		errs = append(errs, errors.New("JWT_SIGNING_KEY is required"))
	}
	if c.Brokerage.BaseURL == "" {
		errs = append(errs, errors.New("BROKERAGE_BASE_URL is required"))
	}
	if c.Brokerage.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("BROKERAGE_TIMEOUT must be positive, got %s", c.Brokerage.Timeout))
	}
	if c.DraftTTL <= 0 {
		errs = append(errs, fmt.Errorf("DRAFT_TTL must be positive, got %s", c.DraftTTL))
	}
	if len(c.AuditHashKey) > 64 {
		errs = append(errs, errors.New("AUDIT_HASH_KEY must be at most 64 bytes"))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
