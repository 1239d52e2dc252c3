package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Mighty MightyConfig `mapstructure:"mighty"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// MightyConfig holds the configuration for the Mighty Inference Server backend
type MightyConfig struct {
	// Client selects the backend client implementation: "rest" or "local"
	Client string `mapstructure:"client"         validate:"required,oneof=rest local"`
	// ServerURL is the base URL of the Mighty Inference Server REST API.
	// Required when Client is "rest".
	ServerURL string `mapstructure:"server_url"     validate:"required_if=Client rest,omitempty,url"`
	// TimeoutSeconds bounds each outbound HTTP request to the backend
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}
