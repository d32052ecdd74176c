package config

import "time"

const (
	envPort          = "PORT"
	envDataDir       = "DATA_DIR"
	envPublicBaseURL = "PUBLIC_BASE_URL"
	envStreamBaseURL = "STREAM_BASE_URL"
	envNtfyBaseURL   = "NTFY_BASE_URL"
	envPollInterval  = "POLL_INTERVAL"
	envResetHour     = "RESET_HOUR"
	envProviders     = "PROVIDERS"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort          = "3000"
	defaultDataDir       = "./data"
	defaultPublicBaseURL = "http://localhost:3000"
	defaultStreamBaseURL = "https://v2.streameast.sk"
	defaultNtfyBaseURL   = "https://ntfy.sh"
	// Conservative default poll cadence; upstream scoreboards refresh slowly
	// and the eligibility window tolerates a couple minutes of jitter.
	defaultPollInterval = 2 * Duration(time.Minute)
	// Local hour for the daily dedup reset.
	defaultResetHour   = 6
	defaultProviders   = "live"
	defaultMetricsPort = "9090"
)
