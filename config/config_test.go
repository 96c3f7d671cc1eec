package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "cafeteria")
	t.Setenv("DB_USER", "cafeteria")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("KAFKA_BROKER", "localhost:9092")
	for _, key := range []string{"HTTP_ADDR", "DB_PORT", "DB_PASSWORD", "DB_SSLMODE", "REDIS_PORT", "KAFKA_TOPIC", "KAFKA_GROUP_ID",
		"LLM_API_URL", "LLM_TIMEOUT", "PUBLIC_BASE_URL", "RATING_CACHE_TTL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "cafeteria-events", cfg.KafkaTopic)
	assert.Equal(t, 10*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 24*time.Hour, cfg.RatingCacheTTL)
	assert.Empty(t, cfg.LLMAPIURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, "host=localhost port=5432 user=cafeteria password= dbname=cafeteria sslmode=disable", cfg.PostgresDSN())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LLM_API_URL", "http://llm:3000")
	t.Setenv("LLM_TIMEOUT", "3s")
	t.Setenv("RATING_CACHE_TTL", "30m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://llm:3000", cfg.LLMAPIURL)
	assert.Equal(t, 3*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 30*time.Minute, cfg.RatingCacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{name: "missing_db_host", key: "DB_HOST", value: "", errMsg: "DBHost"},
		{name: "non_numeric_port", key: "DB_PORT", value: "pg", errMsg: "DBPort"},
		{name: "bad_duration", key: "LLM_TIMEOUT", value: "soon", errMsg: "LLM_TIMEOUT"},
		{name: "bad_log_level", key: "LOG_LEVEL", value: "verbose", errMsg: "LogLevel"},
		{name: "bad_llm_url", key: "LLM_API_URL", value: "not a url", errMsg: "LLMAPIURL"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(testCase.key, testCase.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.errMsg)
		})
	}
}
