package config

const (
	DefaultBaseURL = "http://localhost"
	DefaultPort    = "3000"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultDotenvFile = ".env"
)
