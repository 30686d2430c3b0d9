// Package config loads the server settings from the environment.
//
// Sources, lowest to highest priority: built-in defaults, a .env file in the
// working directory (optional), process environment variables.
package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle-api/internal/daily"
	"github.com/robalobadob/wordle-api/internal/store"
)

// Config is the full server configuration.
type Config struct {
	Port         string `mapstructure:"PORT" validate:"required,numeric"`
	LogLevel     string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`
	Timezone     string `mapstructure:"TIMEZONE" validate:"required,timezone"`

	DatabaseDriver string `mapstructure:"DATABASE_DRIVER" validate:"oneof=sqlite3 mysql memory"`
	DatabaseDSN    string `mapstructure:"DATABASE_DSN" validate:"required_unless=DatabaseDriver memory"`

	Wordlefile6 string `mapstructure:"WORDLEFILE_6_LETTERS" validate:"omitempty,file"`
	Wordlefile7 string `mapstructure:"WORDLEFILE_7_LETTERS" validate:"omitempty,file"`
	Wordlefile8 string `mapstructure:"WORDLEFILE_8_LETTERS" validate:"omitempty,file"`

	RateLimitRPS   int `mapstructure:"RATE_LIMIT_RPS" validate:"gte=0"`
	RateLimitBurst int `mapstructure:"RATE_LIMIT_BURST" validate:"gte=0"`

	SelectorRetryAttempts uint `mapstructure:"SELECTOR_RETRY_ATTEMPTS" validate:"gte=1"`
}

// Defaults lists every key with its default value, in a stable order.
var Defaults = []struct {
	Key   string
	Value string
}{
	{"PORT", "5175"},
	{"LOG_LEVEL", "info"},
	{"CLIENT_ORIGIN", "*"},
	{"TIMEZONE", daily.DefaultTimezone},
	{"DATABASE_DRIVER", store.DriverSQLite},
	{"DATABASE_DSN", "./data/wordle.db"},
	{"WORDLEFILE_6_LETTERS", ""},
	{"WORDLEFILE_7_LETTERS", ""},
	{"WORDLEFILE_8_LETTERS", ""},
	{"RATE_LIMIT_RPS", "5"},
	{"RATE_LIMIT_BURST", "10"},
	{"SELECTOR_RETRY_ATTEMPTS", "3"},
}

// Load reads .env (when present) and the environment, then validates the result.
// The boolean reports whether a .env file was loaded.
func Load() (*Config, bool, error) {
	dotenvLoaded := godotenv.Load() == nil

	v := viper.New()
	for _, d := range Defaults {
		v.SetDefault(d.Key, d.Value)
		if err := v.BindEnv(d.Key); err != nil {
			return nil, dotenvLoaded, fmt.Errorf("failed to bind %s environment variable: %w", d.Key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, dotenvLoaded, fmt.Errorf("invalid configuration format: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, dotenvLoaded, err
	}
	return &cfg, dotenvLoaded, nil
}

// Validate checks field rules and reports every failing key.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value())))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Store returns the database settings.
func (c *Config) Store() store.Config {
	return store.Config{Driver: c.DatabaseDriver, DSN: c.DatabaseDSN}
}

// Wordlefiles maps each supported word length to its configured file ("" = embedded list).
func (c *Config) Wordlefiles() map[int]string {
	return map[int]string{
		6: c.Wordlefile6,
		7: c.Wordlefile7,
		8: c.Wordlefile8,
	}
}
