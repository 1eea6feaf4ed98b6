package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvPracticumToken    = "PRACTICUM_TOKEN"
	EnvTelegramToken     = "TELEGRAM_TOKEN"
	EnvTelegramChatID    = "TELEGRAM_CHAT_ID"
	EnvPracticumEndpoint = "PRACTICUM_ENDPOINT"
	EnvRetryPeriod       = "RETRY_PERIOD"
	EnvHTTPTimeout       = "HTTP_TIMEOUT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvDebug             = "BOT_DEBUG"
)

const (
	DefaultEndpoint    = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultRetryPeriod = 10 * time.Minute
	DefaultHTTPTimeout = 30 * time.Second
	DefaultLogLevel    = "debug"
)

var (
	ErrMissingCredentials = errors.New("отсутствуют необходимые переменные окружения")
	ErrInvalidValue       = errors.New("некорректное значение переменной окружения")
)

type Config struct {
	PracticumToken string `env:"PRACTICUM_TOKEN" validate:"required"`
	TelegramToken  string `env:"TELEGRAM_TOKEN" validate:"required"`
	TelegramChatID string `env:"TELEGRAM_CHAT_ID" validate:"required"`

	Endpoint    string        `env:"PRACTICUM_ENDPOINT" validate:"required,url"`
	RetryPeriod time.Duration `env:"RETRY_PERIOD" validate:"gte=1s"`
	// Ноль означает запросы без таймаута
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" validate:"gte=0"`
	LogLevel    string        `env:"LOG_LEVEL"`
	Debug       bool          `env:"BOT_DEBUG"`

	// Ошибка загрузки .env, не фатальная
	EnvFileErr error `env:"-"`
}

// Load читает .env (или переданные файлы), затем окружение процесса.
// Уже заданные переменные окружения важнее значений из файла.
func Load(envFiles ...string) (*Config, error) {
	cfg := &Config{
		Endpoint:    DefaultEndpoint,
		RetryPeriod: DefaultRetryPeriod,
		HTTPTimeout: DefaultHTTPTimeout,
		LogLevel:    DefaultLogLevel,
	}

	if err := godotenv.Load(envFiles...); err != nil {
		cfg.EnvFileErr = err
	}

	cfg.PracticumToken = strings.TrimSpace(os.Getenv(EnvPracticumToken))
	cfg.TelegramToken = strings.TrimSpace(os.Getenv(EnvTelegramToken))
	cfg.TelegramChatID = strings.TrimSpace(os.Getenv(EnvTelegramChatID))

	if v := os.Getenv(EnvPracticumEndpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	var err error
	if cfg.RetryPeriod, err = durationEnv(EnvRetryPeriod, cfg.RetryPeriod); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = durationEnv(EnvHTTPTimeout, cfg.HTTPTimeout); err != nil {
		return nil, err
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if cfg.Debug, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvDebug, v)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate перечисляет все отсутствующие токены в одной ошибке.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("env")
		if name == "-" {
			return ""
		}
		return name
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(invalid, ", "))
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, v, err)
	}

	return d, nil
}
