package configs

import (
	"github.com/spf13/viper"
)

const (
	envPrefix  = "TIMEGRID"
	dotEnvFile = ".env"
)

var defaults = map[string]any{
	"log.level": "warn",

	"input.format":       "combined",
	"input.strict":       false,
	"input.storage_root": ".",

	"filters.exclude_addresses": []string{},
	"filters.exclude_agents":    []string{},

	"render.mode":    "ruler",
	"render.color":   false,
	"render.summary": false,

	"metrics.textfile": "",

	"server.port":                8080,
	"server.read_header_timeout": 5,
	"server.read_timeout":        10,
	"server.write_timeout":       30,
	"server.idle_timeout":        60,
	"server.files":               []string{},
}

// flagBindings maps config keys to the command-line flags that override them.
var flagBindings = map[string]string{
	"log.level":                 "log-level",
	"input.format":              "format",
	"input.strict":              "strict",
	"input.storage_root":        "storage-root",
	"filters.exclude_addresses": "exclude",
	"filters.exclude_agents":    "exclude-agent",
	"render.mode":               "mode",
	"render.color":              "color",
	"render.summary":            "summary",
	"metrics.textfile":          "metrics-textfile",
	"server.port":               "port",
}

func setDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}
