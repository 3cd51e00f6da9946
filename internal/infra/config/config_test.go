package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_status_bot/internal/domain/fault"
)

func lookupFrom(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func validVars() map[string]string {
	return map[string]string{
		"PRACTICUM_TOKEN":  "practicum-token",
		"TELEGRAM_TOKEN":   "telegram-token",
		"TELEGRAM_CHAT_ID": "123456",
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(validVars()))
	require.NoError(t, err)

	assert.Equal(t, "practicum-token", cfg.PracticumToken)
	assert.Equal(t, "telegram-token", cfg.TelegramToken)
	assert.Equal(t, int64(123456), cfg.TelegramChatID)
	assert.Equal(t, defaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 10*time.Minute, cfg.RetryPeriod)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
}

func TestFromLookupOverrides(t *testing.T) {
	vars := validVars()
	vars["PRACTICUM_ENDPOINT"] = "http://localhost:8080/hw/"
	vars["RETRY_PERIOD"] = "30s"
	vars["REQUEST_TIMEOUT"] = "5s"
	vars["LOG_LEVEL"] = "DEBUG"
	vars["ENVIRONMENT"] = "Production"

	cfg, err := FromLookup(lookupFrom(vars))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/hw/", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.RetryPeriod)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
}

func TestFromLookupMissingTokens(t *testing.T) {
	tests := []struct {
		name   string
		unset  []string
		expect []string
	}{
		{"practicum", []string{"PRACTICUM_TOKEN"}, []string{"PRACTICUM_TOKEN"}},
		{"telegram", []string{"TELEGRAM_TOKEN"}, []string{"TELEGRAM_TOKEN"}},
		{"chat id", []string{"TELEGRAM_CHAT_ID"}, []string{"TELEGRAM_CHAT_ID"}},
		{"all", []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"}, []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := validVars()
			for _, name := range tt.unset {
				delete(vars, name)
			}

			cfg, err := FromLookup(lookupFrom(vars))
			require.Error(t, err)
			assert.Nil(t, cfg)

			var f *fault.Fault
			require.ErrorAs(t, err, &f)
			assert.Equal(t, fault.KindConfig, f.Kind)
			assert.Equal(t, tt.expect, f.Missing)
		})
	}
}

func TestFromLookupBlankTokenIsMissing(t *testing.T) {
	vars := validVars()
	vars["TELEGRAM_TOKEN"] = "   "

	_, err := FromLookup(lookupFrom(vars))
	var f *fault.Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, []string{"TELEGRAM_TOKEN"}, f.Missing)
}

func TestFromLookupInvalidValues(t *testing.T) {
	for name, bad := range map[string]string{
		"TELEGRAM_CHAT_ID": "not-a-number",
		"RETRY_PERIOD":     "-1m",
		"REQUEST_TIMEOUT":  "soon",
	} {
		t.Run(name, func(t *testing.T) {
			vars := validVars()
			vars[name] = bad

			_, err := FromLookup(lookupFrom(vars))
			assert.True(t, fault.Is(err, fault.KindConfig))
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestFromLookupRetryPeriodBelowOneSecond(t *testing.T) {
	vars := validVars()
	vars["RETRY_PERIOD"] = "500ms"

	_, err := FromLookup(lookupFrom(vars))
	assert.True(t, fault.Is(err, fault.KindConfig))
	assert.Contains(t, err.Error(), "must be at least 1s")

	vars["RETRY_PERIOD"] = "1s"
	cfg, err := FromLookup(lookupFrom(vars))
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.RetryPeriod)
}
