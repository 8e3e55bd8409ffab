package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/lazy-scripts/pkg/errors"
	"github.com/arthur-debert/lazy-scripts/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the optional user configuration read from config.toml.
// Every field may be left empty; environment variables take precedence.
type Config struct {
	// ScriptsDir is the directory scanned for scripts.
	ScriptsDir string `toml:"scripts_dir"`

	// ApplicationsDir is where desktop entries are written.
	ApplicationsDir string `toml:"applications_dir"`

	// Ignore lists glob patterns of script file names to leave alone.
	Ignore []string `toml:"ignore"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{}
}

// IsIgnored checks if a script file name matches one of the ignore patterns.
func (c Config) IsIgnored(filename string) bool {
	for _, pattern := range c.Ignore {
		if matched, _ := filepath.Match(pattern, filename); matched {
			return true
		}
	}
	return false
}

// Load reads the config file at configPath. A missing file yields Default().
func Load(configPath string) (Config, error) {
	logger := logging.GetLogger("config").With().Str("configPath", configPath).Logger()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No config file, using defaults")
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", configPath)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse TOML in %s", configPath)
	}

	logger.Debug().
		Str("scripts_dir", cfg.ScriptsDir).
		Str("applications_dir", cfg.ApplicationsDir).
		Int("ignore_rules", len(cfg.Ignore)).
		Msg("Config loaded")

	return cfg, nil
}
