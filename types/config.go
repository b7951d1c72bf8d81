package types

// AppConfig is the root application configuration, populated by viper
// from defaults, the config file and WEBWING_* environment variables.
type AppConfig struct {
	Verbose  bool           `mapstructure:"verbose"`
	Parallel ParallelConfig `mapstructure:"parallel"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
}

// ParallelConfig configures the remote API client.
type ParallelConfig struct {
	// APIKey is the static credential forwarded on every call. When
	// empty the process stays up but every capability call fails fast
	// with a configuration error.
	APIKey              string `mapstructure:"apiKey"`
	BaseURL             string `mapstructure:"baseURL" validate:"omitempty,url"`
	TimeoutSeconds      int    `mapstructure:"timeoutSeconds" validate:"gte=1"`
	PollIntervalSeconds int    `mapstructure:"pollIntervalSeconds" validate:"gte=1"`
	WaitTimeoutSeconds  int    `mapstructure:"waitTimeoutSeconds" validate:"gte=1"`
}

// ServerConfig configures the REST proxy.
type ServerConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	EnableCORS bool   `mapstructure:"enableCORS"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=json text"`
}
