package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"timegrid/internal/shared/validators"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// LoadConfig builds the configuration from, in increasing precedence:
// defaults, the YAML file at configPath (optional), TIMEGRID_* environment
// variables (a .env file in the working directory is loaded first), and the
// flags in flags that were set explicitly. flags may be nil.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errConfigRead(dotEnvFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		// Read from file
		if err := v.ReadInConfig(); err != nil {
			return nil, errConfigRead(configPath, err)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errConfigRead(configPath, err)
			}
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errConfigInvalid(fmt.Sprintf("failed to unmarshal config: %v", err), err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, errConfigInvalid(fmt.Sprintf("config validation failed: %s", strings.Join(validationErrors, ", ")), err)
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Input.Format" -> "input.format")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
