package types

// Operation is the kind of work a single sync action performs.
type Operation int

const (
	// OpSkip records that the item was not present in the source. The plan
	// builder resolves the item set up front, so plans normally carry no
	// skip actions; the variant exists so executors can report one safely.
	OpSkip Operation = iota

	// OpCreate copies the item to a destination where it does not exist yet.
	OpCreate

	// OpBackupCopy renames the existing destination item to a timestamped
	// backup, then copies. The backup name is resolved at apply time.
	OpBackupCopy

	// OpReplaceExact removes the existing destination item outright, then
	// copies. Only emitted in destructive mode.
	OpReplaceExact

	// OpResetSettings wipes and recreates a destination's entire settings
	// sub-directory. A plan-level step emitted once per destination in
	// destructive mode, before any of that destination's item actions.
	OpResetSettings
)

// String returns the operation name used in reports and logs.
func (op Operation) String() string {
	switch op {
	case OpSkip:
		return "skip"
	case OpCreate:
		return "create"
	case OpBackupCopy:
		return "backup-copy"
	case OpReplaceExact:
		return "replace-exact"
	case OpResetSettings:
		return "reset-settings"
	default:
		return "unknown"
	}
}

// SyncAction is one unit of planned work. It is pure data: computing it
// touches nothing beyond existence checks, applying it is the executor's job.
// That separation is what lets dry-run and diff share the planning logic.
type SyncAction struct {
	// Op is the operation to perform
	Op Operation

	// Item is the settings entry involved. Zero for OpResetSettings.
	Item Item

	// Dest is the destination vault
	Dest Vault
}

// SyncPlan is the ordered action sequence for one source vault against a
// set of destinations. Destinations never include the source itself.
type SyncPlan struct {
	// Source is the vault settings are copied from
	Source Vault

	// SettingsDir is the settings sub-directory name (".obsidian")
	SettingsDir string

	// Items is the source's resolved item set, in catalog order
	Items []Item

	// Actions is the full ordered action list: destinations in registry
	// order, items in catalog order within each destination
	Actions []SyncAction

	// Destructive records whether the plan was built in exact-copy mode
	Destructive bool
}

// ExecutedAction is one plan action echoed back from the executor with its
// outcome. Dry-run and live runs produce reports of identical shape; only
// Applied and the underlying filesystem state differ.
type ExecutedAction struct {
	Action SyncAction

	// BackupName is the resolved backup entry name for OpBackupCopy actions
	BackupName string

	// Applied is false in dry-run mode and for failed actions
	Applied bool

	// Err holds the per-action failure, if any. A failure never aborts the
	// remaining actions in the plan.
	Err error
}
