package config

import (
	"os"

	"github.com/pseudomuto/renamer/pkg/consts"
	"github.com/pseudomuto/renamer/pkg/format"
	"go.uber.org/fx"
)

// EnvConfigPath names the environment variable overriding the config location.
const EnvConfigPath = "RENAMER_CONFIG"

var Module = fx.Module("config", fx.Provide(
	Load,
	format.NewDefault,
))

// Load attempts to load the configuration from $RENAMER_CONFIG, or renamer.yaml
// when the variable is unset. Returns nil if the default file doesn't exist,
// allowing commands that don't require config (like rename, dialects, help,
// version) to function properly. A path named explicitly must exist.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			return nil, nil
		}

		path = consts.ConfigFile
	}

	return LoadConfigFile(path)
}
