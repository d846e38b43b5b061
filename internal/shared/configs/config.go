package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Input   InputConfig   `mapstructure:"input" validate:"required"`
	Filters FiltersConfig `mapstructure:"filters"`
	Render  RenderConfig  `mapstructure:"render" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// InputConfig describes how log files are found and parsed.
type InputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=common combined"`

	// Strict makes impossible dates abort the run instead of being skipped.
	Strict bool `mapstructure:"strict"`

	// StorageRoot is where relative paths and patterns resolve.
	StorageRoot string `mapstructure:"storage_root" validate:"required"`
}

// FiltersConfig holds the default exclusions.
type FiltersConfig struct {
	ExcludeAddresses []string `mapstructure:"exclude_addresses"`
	ExcludeAgents    []string `mapstructure:"exclude_agents"`
}

// RenderConfig holds output configuration.
type RenderConfig struct {
	Mode    string `mapstructure:"mode" validate:"required,oneof=ruler plain"`
	Color   bool   `mapstructure:"color"`
	Summary bool   `mapstructure:"summary"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"` // written after a one-shot run when set
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int      `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int      `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int      `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int      `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)

	// Files are served when serve gets no arguments.
	Files []string `mapstructure:"files"`
}
