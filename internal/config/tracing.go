package config

// TracingConfig controls span export. It shares the OTLP endpoint with metrics.
type TracingConfig struct {
	Enabled      bool
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadTracing() TracingConfig {
	return TracingConfig{
		Enabled:      boolEnvOrDefault(envTracingOn, defaultTracingOn),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
