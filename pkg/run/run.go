// Package run executes an arbitrary user command in each vault root and
// collects its output keyed by vault name. It is a thin boundary around
// os/exec; the sync engine has no dependency on it.
package run

import (
	"os/exec"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/errors"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/logging"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Result is one vault's command outcome.
type Result struct {
	Vault types.Vault

	// Output is the combined stdout and stderr of the command
	Output []byte

	// Skipped is true in dry-run mode
	Skipped bool

	Err error
}

// InVaults runs command with args in every vault root, sequentially and in
// the given order. Failures are recorded per vault and do not stop the
// remaining vaults. In dry-run mode nothing is spawned.
func InVaults(vaults []types.Vault, command string, args []string, dryRun bool) []Result {
	logger := logging.GetLogger("run")

	results := make([]Result, 0, len(vaults))
	for _, vault := range vaults {
		result := Result{Vault: vault}
		if dryRun {
			result.Skipped = true
			results = append(results, result)
			continue
		}

		logger.Debug().
			Str("vault", vault.Name).
			Str("command", command).
			Strs("args", args).
			Msg("Running command in vault")

		cmd := exec.Command(command, args...)
		cmd.Dir = vault.Path
		output, err := cmd.CombinedOutput()
		result.Output = output
		if err != nil {
			result.Err = errors.Wrapf(err, errors.ErrCommandFailed,
				"command failed in vault %s", vault.Name).
				WithDetail("vault", vault.Name).
				WithDetail("command", command)
		}
		results = append(results, result)
	}
	return results
}
