package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkaminski/obsidian-settings-manager/pkg/output"
	"github.com/peterkaminski/obsidian-settings-manager/pkg/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected output.Format
		wantErr  bool
	}{
		{"auto", output.FormatAuto, false},
		{"", output.FormatAuto, false},
		{"term", output.FormatTerminal, false},
		{"terminal", output.FormatTerminal, false},
		{"text", output.FormatText, false},
		{"plain", output.FormatText, false},
		{"TEXT", output.FormatText, false},
		{"bogus", output.FormatAuto, true},
	}

	for _, tt := range tests {
		format, err := output.ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.expected, format, "input %q", tt.input)
		}
	}
}

func TestPlanReportTextFormat(t *testing.T) {
	source := types.Vault{Name: "Source", Path: "/v/Source"}
	dest := types.Vault{Name: "Dest", Path: "/v/Dest"}

	p := &types.SyncPlan{
		Source:      source,
		SettingsDir: ".obsidian",
		Actions: []types.SyncAction{
			{Op: types.OpBackupCopy, Item: types.Item{Name: "config"}, Dest: dest},
			{Op: types.OpCreate, Item: types.Item{Name: "plugins", Kind: types.KindDir}, Dest: dest},
		},
	}
	results := []types.ExecutedAction{
		{Action: p.Actions[0], BackupName: "config-2021-05-23T23:57:24.141428Z", Applied: true},
		{Action: p.Actions[1], Applied: true},
	}

	var buf bytes.Buffer
	r := output.NewRenderer(&buf, output.FormatText)
	r.PlanReport(p, results, false)

	out := buf.String()
	assert.Contains(t, out, `Copying "Source" configuration to 1 other vault(s)`)
	assert.Contains(t, out, "backup-copy")
	assert.Contains(t, out, "(backup: config-2021-05-23T23:57:24.141428Z)")
	assert.Contains(t, out, "create")
	assert.NotContains(t, out, "\x1b[", "text format must carry no escape sequences")
}

func TestPlanReportDryRunBanner(t *testing.T) {
	source := types.Vault{Name: "Source", Path: "/v/Source"}

	var buf bytes.Buffer
	r := output.NewRenderer(&buf, output.FormatText)
	r.PlanReport(&types.SyncPlan{Source: source}, nil, true)

	assert.Contains(t, buf.String(), "dry-run, no changes made")
}

func TestVaultListPlain(t *testing.T) {
	vaults := []types.Vault{
		{Name: "Notes", Path: "/abs/elsewhere/Notes"},
	}

	var buf bytes.Buffer
	output.NewRenderer(&buf, output.FormatText).VaultList(vaults)

	assert.Equal(t, "/abs/elsewhere/Notes\n", buf.String())
}
