package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for bannerctl serve.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port of the REST API.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// EventsPort serves the session event stream (WebSocket and SSE).
	EventsPort int `mapstructure:"EVENTS_PORT" default:"8081"`
	// BasePath prefixes every API route.
	BasePath string `mapstructure:"BASE_PATH" default:"/api/banners"`

	Sessions SessionConfig `mapstructure:",squash"`

	Notify NotifyConfig `mapstructure:",squash"`
}

// NotifyConfig points save intents at a webhook.
type NotifyConfig struct {
	// WebhookURL receives save intents; empty logs them instead.
	WebhookURL string `mapstructure:"SAVE_WEBHOOK_URL"`
	// WebhookKey is sent as a bearer token.
	WebhookKey string `mapstructure:"SAVE_WEBHOOK_KEY"`
	// Channel is appended to WebhookURL.
	Channel string `mapstructure:"SAVE_CHANNEL" default:"banner.saved"`
}

// SessionConfig controls where editing sessions live.
type SessionConfig struct {
	// RedisURL selects the redis store; empty keeps sessions in memory.
	RedisURL string `mapstructure:"REDIS_URL"`
	// TTL expires idle sessions in redis.
	TTL time.Duration `mapstructure:"SESSION_TTL" default:"30m"`
	// RecipeManifest is an optional YAML manifest merged into the recipe registry.
	RecipeManifest string `mapstructure:"RECIPE_MANIFEST"`
}

// Load loads configuration from a .env file in path and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its env var and sets defaults in Viper.
func processTags(v *viper.Viper, config any) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config any) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
