package config

const (
	EnvBaseURL   = "BASE_URL"
	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)
