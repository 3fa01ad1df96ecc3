// Package output renders osm's results for the terminal. Rendering is kept
// out of the engine packages so they stay pure data in, data out.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/backup"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/diff"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/output/styles"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/run"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

// Renderer writes human-readable reports in a given format.
type Renderer struct {
	w      io.Writer
	format Format
}

// NewRenderer creates a renderer targeting w. FormatAuto must be resolved
// by the caller first.
func NewRenderer(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

// styled applies the named style in terminal format, and passes the text
// through untouched otherwise.
func (r *Renderer) styled(styleName, s string) string {
	if r.format != FormatTerminal {
		return s
	}
	return styles.Get(styleName).Render(s)
}

func (r *Renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.w, format, args...)
}

// VaultList prints one vault per line, home-relative where possible.
func (r *Renderer) VaultList(vaults []types.Vault) {
	for _, vault := range vaults {
		r.printf("%s\n", vault.DisplayPath())
	}
}

// ItemSet prints the items that would be copied from the source vault.
func (r *Renderer) ItemSet(source types.Vault, items []types.Item) {
	r.printf("%s\n", r.styled("Header", fmt.Sprintf("These items would be copied from %s:", source.DisplayPath())))
	for _, item := range items {
		r.printf("    %s (%s)\n", item.Name, item.Kind)
	}
}

// PlanReport prints the outcome of an apply, grouped by destination vault.
func (r *Renderer) PlanReport(p *types.SyncPlan, results []types.ExecutedAction, dryRun bool) {
	header := fmt.Sprintf("Copying %q configuration to %d other vault(s)", p.Source.Name, countDests(p))
	if dryRun {
		header += " " + r.styled("DryRun", "(dry-run, no changes made)")
	}
	r.printf("%s\n", r.styled("Header", header))

	var currentDest string
	for _, result := range results {
		if result.Action.Dest.Name != currentDest {
			currentDest = result.Action.Dest.Name
			r.printf("\n%s\n", r.styled("VaultName", result.Action.Dest.DisplayPath()))
		}
		r.printf("  %s\n", r.actionLine(result))
	}
	r.printf("\n")
}

func (r *Renderer) actionLine(result types.ExecutedAction) string {
	op := result.Action.Op
	label := r.styled(opStyleName(op), fmt.Sprintf("%-14s", op.String()))

	var line string
	switch op {
	case types.OpResetSettings:
		line = fmt.Sprintf("%s %s", label, "settings directory wiped and recreated")
	case types.OpBackupCopy:
		line = fmt.Sprintf("%s %s %s", label, result.Action.Item.Name,
			r.styled("Muted", fmt.Sprintf("(backup: %s)", result.BackupName)))
	default:
		line = fmt.Sprintf("%s %s", label, result.Action.Item.Name)
	}

	if result.Err != nil {
		line += " " + r.styled("Error", fmt.Sprintf("FAILED: %v", result.Err))
	}
	return line
}

func opStyleName(op types.Operation) string {
	switch op {
	case types.OpCreate:
		return "Create"
	case types.OpBackupCopy:
		return "BackupCopy"
	case types.OpReplaceExact:
		return "ReplaceExact"
	case types.OpResetSettings:
		return "ResetSettings"
	default:
		return "Muted"
	}
}

func countDests(p *types.SyncPlan) int {
	seen := make(map[string]bool)
	for _, action := range p.Actions {
		seen[action.Dest.Path] = true
	}
	return len(seen)
}

// Backups prints found backup artifacts grouped by vault.
func (r *Renderer) Backups(artifacts []backup.Artifact) {
	if len(artifacts) == 0 {
		r.printf("%s\n", r.styled("Muted", "No backup artifacts found."))
		return
	}
	var currentVault string
	for _, artifact := range artifacts {
		if artifact.Vault.Name != currentVault {
			currentVault = artifact.Vault.Name
			r.printf("%s\n", r.styled("VaultName", artifact.Vault.DisplayPath()))
		}
		r.printf("    %s\n", artifact.Name)
	}
}

// RemoveReport prints per-artifact removal outcomes.
func (r *Renderer) RemoveReport(results []backup.RemoveResult, dryRun bool) {
	for _, result := range results {
		switch {
		case result.Err != nil:
			r.printf("%s %s: %v\n", r.styled("Error", "failed"), result.Artifact.Path, result.Err)
		case dryRun:
			r.printf("%s %s\n", r.styled("DryRun", "would remove"), result.Artifact.Path)
		default:
			r.printf("removed %s\n", result.Artifact.Path)
		}
	}
}

// Diff prints the structural differences against each destination vault.
// Unchanged entries are omitted.
func (r *Renderer) Diff(source types.Vault, diffs []diff.VaultDiff) {
	r.printf("%s\n", r.styled("Header", fmt.Sprintf("Differences against %q:", source.Name)))
	for _, vd := range diffs {
		r.printf("\n%s\n", r.styled("VaultName", vd.Dest.DisplayPath()))
		if !vd.HasDifferences() {
			r.printf("    %s\n", r.styled("Muted", "(no differences)"))
			continue
		}
		for _, item := range vd.Items {
			r.diffNode(item, 1)
		}
	}
}

func (r *Renderer) diffNode(node *diff.Node, depth int) {
	if node.Status == diff.StatusSame {
		return
	}
	indent := strings.Repeat("    ", depth)
	name := node.Name
	if node.IsDir {
		name += "/"
	}
	r.printf("%s%s %s\n", indent, name, r.styled(statusStyleName(node.Status), "["+node.Status.String()+"]"))
	for _, child := range node.Children {
		r.diffNode(child, depth+1)
	}
}

func statusStyleName(status diff.Status) string {
	switch status {
	case diff.StatusSourceOnly:
		return "SourceOnly"
	case diff.StatusDestOnly:
		return "DestOnly"
	case diff.StatusDiffers:
		return "Differs"
	default:
		return "Muted"
	}
}

// RunResults prints each vault's command output under a bold section header.
func (r *Renderer) RunResults(results []run.Result) {
	for _, result := range results {
		header := "# " + result.Vault.DisplayPath()
		if r.format == FormatTerminal {
			header = pterm.Bold.Sprint(header)
		}
		r.printf("\n%s\n\n", header)

		if result.Skipped {
			r.printf("%s\n", r.styled("DryRun", "(dry-run: command not executed)"))
			continue
		}
		if len(result.Output) > 0 {
			r.printf("%s", result.Output)
			if result.Output[len(result.Output)-1] != '\n' {
				r.printf("\n")
			}
		}
		if result.Err != nil {
			r.printf("%s\n", r.styled("Error", result.Err.Error()))
		}
	}
}
