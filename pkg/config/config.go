// Package config reads the process environment that utilkit consumes: the base
// URL and port used to build absolute links, and the logging setup.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"utilkit/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL   string `validate:"required,url"`
	Port      string `validate:"required,valid_port"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json text"`

	Log *logger.Logger `validate:"-"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("configuration validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("valid_port", validatePort); err != nil {
		panic(fmt.Sprintf("config: register valid_port: %v", err))
	}
	return v
}

func validatePort(fl validator.FieldLevel) bool {
	port, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	return err == nil && port >= 1 && port <= 65535
}

// Load reads the environment, validates it and builds the service logger. The
// logger writes to stderr so command output on stdout stays clean.
func Load(serviceName string) (*Config, error) {
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Log = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  os.Stderr,
		Service: serviceName,
	})
	cfg.LogConfiguration()
	return cfg, nil
}

// FromEnv reads the environment without validating it. Unset or empty variables
// take their defaults and the base URL loses any trailing slash.
func FromEnv() *Config {
	return &Config{
		BaseURL:   strings.TrimRight(getEnvStr(EnvBaseURL, DefaultBaseURL), "/"),
		Port:      strings.TrimSpace(getEnvStr(EnvPort, DefaultPort)),
		LogLevel:  strings.ToLower(getEnvStr(EnvLogLevel, DefaultLogLevel)),
		LogFormat: strings.ToLower(getEnvStr(EnvLogFormat, DefaultLogFormat)),
	}
}

func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "url":
			message = fmt.Sprintf("%s must be an absolute URL, got: %v", err.Field(), err.Value())
		case "valid_port":
			message = fmt.Sprintf("%s must be between 1 and 65535, got: %v", err.Field(), err.Value())
		case "oneof":
			message = fmt.Sprintf("%s must be one of [%s], got: %v", err.Field(), err.Param(), err.Value())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

// ServerURL joins the base URL and port: "http://localhost" and "3000" give
// "http://localhost:3000". A base URL that already names a port is returned as is.
func (cfg *Config) ServerURL() string {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Port == "" {
		return base
	}
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return base + ":" + cfg.Port
	}
	if u.Port() != "" {
		return base
	}
	u.Host = net.JoinHostPort(u.Hostname(), cfg.Port)
	return u.String()
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Debug("Configuration loaded successfully",
		"base_url", cfg.BaseURL,
		"port", cfg.Port,
		"server_url", cfg.ServerURL(),
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
	)
}

// LoadDotenv loads variables from the given files (".env" when none are given)
// without overriding variables that are already set. Missing files are skipped.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{DefaultDotenvFile}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	return getEnvStr(key, fallback)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
