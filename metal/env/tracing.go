package env

import "log/slog"

// TracingEnvironment holds configuration for OpenTelemetry tracing
type TracingEnvironment struct {
	Enabled  bool
	Endpoint string `validate:"omitempty,required_if=Enabled true,url"`
}

func NewTracingEnvironment() TracingEnvironment {
	enabled := GetEnvVar("ENV_TRACING_ENABLED") == "true"
	endpoint := GetEnvVar("ENV_TRACING_OTLP_ENDPOINT")

	if enabled && endpoint == "" {
		endpoint = "http://localhost:4318"
		slog.Warn("tracing enabled without ENV_TRACING_OTLP_ENDPOINT, using default", "endpoint", endpoint)
	}

	return TracingEnvironment{
		Enabled:  enabled,
		Endpoint: endpoint,
	}
}
