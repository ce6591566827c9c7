package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// TracingConfig holds OpenTelemetry exporter and sampler settings.
// Names follow the standard OTEL_* environment variables.
type TracingConfig struct {
	Disabled    bool
	ServiceName string
	Protocol    string
	Endpoint    string
	Sampler     string
	SamplerArg  string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	Host string
	Port string
	// Debug enables template auto-reload, route printing and detailed 500 messages.
	Debug          bool
	TemplateDir    string
	MinifyHTML     bool
	TimeZone       string
	MetricsEnabled bool
	// ShutdownTimeoutSec bounds graceful shutdown after SIGINT/SIGTERM.
	ShutdownTimeoutSec int
	Tracing            TracingConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the file.
func Load() *AppConfig {
	endpoint := getEnv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	if endpoint == "" {
		endpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	}

	return &AppConfig{
		Host:               getEnv("HOST", ""),
		Port:               getEnv("PORT", "8080"),
		Debug:              getEnvBool("APP_DEBUG", true),
		TemplateDir:        getEnv("TEMPLATE_DIR", ""),
		MinifyHTML:         getEnvBool("MINIFY_HTML", false),
		TimeZone:           getEnv("APP_TIMEZONE", "UTC"),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		Tracing: TracingConfig{
			Disabled:    getEnvBool("OTEL_SDK_DISABLED", true),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "pokedex"),
			Protocol:    getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
			Endpoint:    endpoint,
			Sampler:     getEnv("OTEL_TRACES_SAMPLER", "parentbased_traceidratio"),
			SamplerArg:  getEnv("OTEL_TRACES_SAMPLER_ARG", "1.0"),
		},
	}
}

// Addr returns the listen address in host:port form.
func (c *AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
