// Package config defines the server configuration structure.
package config

// Default configuration values.
const (
	DefaultServiceName = "python-api"
	DefaultPort        = 8000
	DefaultEnvironment = "development"
	DefaultLogLevel    = "INFO"
	DefaultNodeName    = "unknown"
	DefaultPodName     = "unknown"
	DefaultPodIP       = "unknown"
	DefaultErrorType   = "500"
)

// Default returns the default server configuration.
func Default() *Config {
	return &Config{
		ServiceName: DefaultServiceName,
		Port:        DefaultPort,
		Environment: DefaultEnvironment,
		LogLevel:    DefaultLogLevel,
		NodeName:    DefaultNodeName,
		PodName:     DefaultPodName,
		PodIP:       DefaultPodIP,
		ErrorType:   DefaultErrorType,
	}
}
