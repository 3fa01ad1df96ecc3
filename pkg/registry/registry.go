// Package registry reads Obsidian's own vault registry (obsidian.json) and
// exposes the user's vaults as an ordered list. The registry file is owned
// by Obsidian: osm only reads it, and reports rather than repairs a
// malformed document.
package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/config"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/errors"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// EnvObsidianConfigDir overrides the directory holding obsidian.json
const EnvObsidianConfigDir = "OBSIDIAN_CONFIG_DIR"

// vaultEntry is the part of Obsidian's per-vault record we care about.
type vaultEntry struct {
	Path string `json:"path"`
}

// ResolveConfigDir locates the directory containing Obsidian's registry
// file. Precedence: explicit argument, then OBSIDIAN_CONFIG_DIR, then the
// configured per-platform search path.
func ResolveConfigDir(explicit string, cfg *config.Config) (string, error) {
	if explicit != "" {
		return config.ExpandHome(explicit), nil
	}
	if env := os.Getenv(EnvObsidianConfigDir); env != "" {
		return config.ExpandHome(env), nil
	}

	candidates := []string{filepath.Join(xdg.ConfigHome, "obsidian")}
	for _, dir := range cfg.Obsidian.SearchPath {
		candidates = append(candidates, config.ExpandHome(dir))
	}

	var checked []string
	for _, dir := range candidates {
		candidate := filepath.Join(dir, cfg.Obsidian.ConfigFile)
		checked = append(checked, candidate)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return dir, nil
		}
	}

	return "", errors.Newf(errors.ErrRegistryUnavailable,
		"could not locate Obsidian's %s after checking: %v", cfg.Obsidian.ConfigFile, checked).
		WithDetail("checked", checked)
}

// List loads the vaults Obsidian is tracking, in the order they appear in
// the registry file. Vaults living inside the Obsidian config directory
// itself (Help and other system vaults) are excluded.
//
// A missing or malformed registry file yields ErrRegistryUnavailable. A
// registry with zero user vaults yields ErrEmptyRegistry alongside an empty
// list; callers treat that as a warning and carry on.
func List(fs types.FS, configDir string, cfg *config.Config) ([]types.Vault, error) {
	logger := logging.GetLogger("registry")

	registryPath := filepath.Join(configDir, cfg.Obsidian.ConfigFile)
	data, err := fs.ReadFile(registryPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryUnavailable,
			"cannot read Obsidian registry %s", registryPath).
			WithDetail("path", registryPath)
	}

	entries, err := decodeVaults(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryUnavailable,
			"cannot parse Obsidian registry %s", registryPath).
			WithDetail("path", registryPath)
	}

	vaults := make([]types.Vault, 0, len(entries))
	for _, entry := range entries {
		if entry.Path == "" {
			continue
		}
		if filepath.Dir(filepath.Clean(entry.Path)) == filepath.Clean(configDir) {
			logger.Debug().Str("path", entry.Path).Msg("Skipping system vault")
			continue
		}
		vaults = append(vaults, types.Vault{
			Name: filepath.Base(entry.Path),
			Path: entry.Path,
		})
	}

	logger.Debug().Int("count", len(vaults)).Str("registry", registryPath).Msg("Loaded vaults")

	if len(vaults) == 0 {
		return vaults, errors.Newf(errors.ErrEmptyRegistry,
			"no user vaults found in %s", registryPath)
	}
	return vaults, nil
}

// decodeVaults walks the registry document token by token so the vault
// order from the file is preserved; encoding/json's map decoding would
// lose it.
func decodeVaults(data []byte) ([]vaultEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var entries []vaultEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in registry", keyTok)
		}

		if key != "vaults" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
			continue
		}

		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}
		for dec.More() {
			if _, err := dec.Token(); err != nil { // vault id, unused
				return nil, err
			}
			var entry vaultEntry
			if err := dec.Decode(&entry); err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		if _, err := dec.Token(); err != nil { // closing '}' of vaults
			return nil, err
		}
	}

	return entries, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("unexpected end of registry document")
		}
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q in registry, got %v", want, tok)
	}
	return nil
}

// Find resolves a vault reference against the registered vaults. The
// reference may be a vault name, a path relative to the home directory, or
// an absolute path.
func Find(vaults []types.Vault, ref string) (types.Vault, error) {
	var candidates []string

	candidates = append(candidates, config.ExpandHome(ref))
	if !filepath.IsAbs(ref) {
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(home, ref))
		}
	}

	for _, v := range vaults {
		if v.Name == ref {
			return v, nil
		}
		for _, candidate := range candidates {
			if filepath.Clean(v.Path) == filepath.Clean(candidate) {
				return v, nil
			}
		}
	}

	known := make([]string, 0, len(vaults))
	for _, v := range vaults {
		known = append(known, v.DisplayPath())
	}
	return types.Vault{}, errors.Newf(errors.ErrVaultNotFound,
		"%q is not one of your vaults", ref).
		WithDetail("known_vaults", known)
}
