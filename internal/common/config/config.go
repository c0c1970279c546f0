// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig                `mapstructure:"app"`
	Server        ServerConfig             `mapstructure:"server"`
	Registry      RegistryConfig           `mapstructure:"registry"`
	Handlers      map[string]HandlerConfig `mapstructure:"handlers"`
	Logging       LoggingConfig            `mapstructure:"logging"`
	Notifications NotificationConfig       `mapstructure:"notifications"`
	Observability ObservabilityConfig      `mapstructure:"observability"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	StaticDir       string `mapstructure:"static_dir"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// Addr returns the host:port listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RegistryConfig controls where the activity registry seeds from.
// An empty SeedFile means the built-in seed data set.
type RegistryConfig struct {
	SeedFile string `mapstructure:"seed_file"`
}

// HandlerConfig holds the core settings applicable to every request handler.
type HandlerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Timeout int  `mapstructure:"timeout"` // milliseconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NotificationConfig holds settings for signup confirmation delivery.
type NotificationConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	AWSRegion   string `mapstructure:"aws_region"`
	FromAddress string `mapstructure:"from_address"`
	SNSTopicARN string `mapstructure:"sns_topic_arn"`
}

type ObservabilityConfig struct {
	ServiceName    string `mapstructure:"service_name"`
	TracingEnabled bool   `mapstructure:"tracing_enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}
