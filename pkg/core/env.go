// Package core wires configuration loading and vault discovery for the
// command layer, so every command resolves vaults the same way.
package core

import (
	"github.com/peterkaminski/obsidian-settings-manager/pkg/config"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/errors"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/filesystem"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/registry"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Env is the resolved environment a command runs against.
type Env struct {
	Config *config.Config
	Vaults []types.Vault
	FS     types.FS
}

// Options selects the configuration and registry sources.
type Options struct {
	// ConfigPath is the explicit osm config file, may be empty
	ConfigPath string

	// ObsidianDir is the explicit Obsidian config directory, may be empty
	ObsidianDir string

	// FileSystem to use, defaults to the OS filesystem
	FileSystem types.FS
}

// LoadEnv loads the osm configuration and the vault registry. Registry
// errors abort here, before any plan exists, with one exception: an empty
// registry is only a warning, and downstream operations run against zero
// vaults.
func LoadEnv(opts Options) (*Env, error) {
	logger := logging.GetLogger("core")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	configDir, err := registry.ResolveConfigDir(opts.ObsidianDir, cfg)
	if err != nil {
		return nil, err
	}

	vaults, err := registry.List(fs, configDir, cfg)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrEmptyRegistry) {
			logger.Warn().Msg(err.Error())
		} else {
			return nil, err
		}
	}

	return &Env{Config: cfg, Vaults: vaults, FS: fs}, nil
}
