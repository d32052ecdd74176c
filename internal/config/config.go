package config

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	DataDir       string
	PublicBaseURL string
	StreamBaseURL string
	PollInterval  Duration
	ResetHour     int
	Providers     string
	Ntfy          NtfyConfig
	Metrics       MetricsConfig
}

// NtfyConfig controls how notifications are delivered.
type NtfyConfig struct {
	BaseURL string
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		DataDir:       envOrDefault(envDataDir, defaultDataDir),
		PublicBaseURL: envOrDefault(envPublicBaseURL, defaultPublicBaseURL),
		StreamBaseURL: envOrDefault(envStreamBaseURL, defaultStreamBaseURL),
		PollInterval:  durationEnvOrDefault(envPollInterval, defaultPollInterval),
		ResetHour:     hourEnvOrDefault(envResetHour, defaultResetHour),
		Providers:     envOrDefault(envProviders, defaultProviders),
		Ntfy: NtfyConfig{
			BaseURL: envOrDefault(envNtfyBaseURL, defaultNtfyBaseURL),
		},
		Metrics: MetricsConfig{
			Enabled:      boolEnvOrDefault(envMetricsOn, true),
			Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
			OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
			ServiceName:  envOrDefault(envOtelService, "gamewatch"),
			OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
		},
	}
}
