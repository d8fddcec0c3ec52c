package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.Brokerage.Timeout)
	assert.Equal(t, 72*time.Hour, cfg.DraftTTL)
	assert.Equal(t, "nomination-audit", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DEMATKYC_ADDR", ":9999")
	t.Setenv("BROKERAGE_BASE_URL", "https://backend.example.com/")
	t.Setenv("BROKERAGE_TIMEOUT", "2s")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("DRAFT_TTL", "30m")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "https://backend.example.com", cfg.Brokerage.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Brokerage.Timeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Minute, cfg.DraftTTL)
}

func TestFromEnvRejectsInvalid(t *testing.T) {
	t.Setenv("BROKERAGE_TIMEOUT", "0s")
	t.Setenv("AUDIT_HASH_KEY", strings.Repeat("k", 65))

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BROKERAGE_TIMEOUT")
	assert.Contains(t, err.Error(), "AUDIT_HASH_KEY")
}

func TestFromEnvAcceptsMaxLengthHashKey(t *testing.T) {
	t.Setenv("AUDIT_HASH_KEY", strings.Repeat("k", 64))

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Len(t, cfg.AuditHashKey, 64)
}
