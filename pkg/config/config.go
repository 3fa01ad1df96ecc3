// Package config loads osm's layered configuration: built-in defaults,
// overlaid by an optional user config file. The user file location follows
// a documented precedence: explicit path, then the OSM_CONFIG environment
// variable, then $XDG_CONFIG_HOME/osm/osm.toml, then ~/.osm.toml.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/errors"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// EnvConfigFile overrides the user config file location
const EnvConfigFile = "OSM_CONFIG"

// ConfigFileName is the user config file name under the XDG config dir
const ConfigFileName = "osm.toml"

// HomeConfigFileName is the dotted fallback in the home directory
const HomeConfigFileName = ".osm.toml"

// ObsidianConfig holds the settings for locating Obsidian's vault registry.
type ObsidianConfig struct {
	ConfigFile string   `koanf:"config_file" toml:"config_file"`
	SearchPath []string `koanf:"search_path" toml:"search_path"`
}

// Config is the fully resolved osm configuration.
type Config struct {
	SettingsDir string         `koanf:"settings_dir" toml:"settings_dir"`
	FilesToCopy []string       `koanf:"files_to_copy" toml:"files_to_copy"`
	Obsidian    ObsidianConfig `koanf:"obsidian" toml:"obsidian"`
}

// Catalog returns the ordered item catalog from the configuration.
func (c *Config) Catalog() types.Catalog {
	return types.Catalog(c.FilesToCopy)
}

// Load reads the configuration. explicitPath may be empty, in which case the
// environment variable and default locations are consulted in order. A
// missing config file is fine (defaults apply); an unreadable or malformed
// one is an error.
func Load(explicitPath string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	path, required := findConfigFile(explicitPath)
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if required {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
			}
		} else {
			logger.Debug().Str("path", path).Msg("Loading user config")
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}

	if cfg.SettingsDir == "" || len(cfg.FilesToCopy) == 0 {
		return nil, errors.New(errors.ErrConfigParse, "configuration must set settings_dir and a non-empty files_to_copy list")
	}

	return &cfg, nil
}

// findConfigFile resolves the user config file path. The second return value
// reports whether the path was explicitly requested (flag or env), in which
// case a missing file is an error rather than a silent fallback.
func findConfigFile(explicitPath string) (string, bool) {
	if explicitPath != "" {
		return ExpandHome(explicitPath), true
	}
	if envPath := os.Getenv(EnvConfigFile); envPath != "" {
		return ExpandHome(envPath), true
	}
	xdgPath := filepath.Join(xdg.ConfigHome, "osm", ConfigFileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath, false
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	homePath := filepath.Join(home, HomeConfigFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, false
	}
	return "", false
}

// ExpandHome expands a leading "~" in path to the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// MarshalEffective renders the resolved configuration as TOML, used by
// `osm genconfig --effective`.
func MarshalEffective(cfg *Config) (string, error) {
	out, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot render configuration")
	}
	return string(out), nil
}
