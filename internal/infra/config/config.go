package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"homework_status_bot/internal/domain/fault"
)

const (
	defaultEndpoint       = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultRetryPeriod    = 10 * time.Minute
	defaultRequestTimeout = 30 * time.Second

	// cron's @every cannot tick faster than once a second.
	minRetryPeriod = time.Second
)

// AppConfig holds all configuration for the application.
// It is built once at startup and passed to every component.
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
	Endpoint       string
	RetryPeriod    time.Duration
	RequestTimeout time.Duration
	LogLevel       string
	Environment    string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the configuration from an arbitrary variable source.
// All required variables are checked, so the returned fault names every missing one.
func FromLookup(lookup func(string) (string, bool)) (*AppConfig, error) {
	get := func(name string) string {
		v, _ := lookup(name)
		return strings.TrimSpace(v)
	}

	cfg := &AppConfig{
		PracticumToken: get("PRACTICUM_TOKEN"),
		TelegramToken:  get("TELEGRAM_TOKEN"),
	}
	chatIDStr := get("TELEGRAM_CHAT_ID")

	var missing []string
	for _, required := range []struct {
		name, value string
	}{
		{"PRACTICUM_TOKEN", cfg.PracticumToken},
		{"TELEGRAM_TOKEN", cfg.TelegramToken},
		{"TELEGRAM_CHAT_ID", chatIDStr},
	} {
		if required.value == "" {
			missing = append(missing, required.name)
		}
	}
	if len(missing) > 0 {
		return nil, fault.Config(missing...)
	}

	var err error
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, &fault.Fault{Kind: fault.KindConfig, Detail: "invalid TELEGRAM_CHAT_ID", Err: err}
	}

	cfg.Endpoint = get("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	if cfg.RetryPeriod, err = durationOr(get("RETRY_PERIOD"), defaultRetryPeriod, minRetryPeriod); err != nil {
		return nil, &fault.Fault{Kind: fault.KindConfig, Detail: "invalid RETRY_PERIOD", Err: err}
	}
	if cfg.RequestTimeout, err = durationOr(get("REQUEST_TIMEOUT"), defaultRequestTimeout, 0); err != nil {
		return nil, &fault.Fault{Kind: fault.KindConfig, Detail: "invalid REQUEST_TIMEOUT", Err: err}
	}

	cfg.LogLevel = strings.ToLower(get("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(get("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

func durationOr(raw string, def, floor time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	if d < floor {
		return 0, fmt.Errorf("must be at least %s, got %s", floor, d)
	}
	return d, nil
}
