// Package genconfig implements the genconfig command: print the built-in
// configuration so users can save and customize it.
package genconfig

import (
	"github.com/peterkaminski/obsidian-settings-manager/pkg/config"
)

// Options contains options for the genconfig command
type Options struct {
	// Effective renders the resolved configuration (defaults plus the
	// user's config file) instead of the raw built-in file
	Effective bool

	ConfigPath string
}

// GenConfig returns the configuration content to print.
func GenConfig(opts Options) (string, error) {
	if !opts.Effective {
		return config.GetDefaultConfigContent(), nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return "", err
	}
	return config.MarshalEffective(cfg)
}
