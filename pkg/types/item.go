package types

// ItemKind distinguishes file items from directory items. The kind is
// discovered from the source vault at resolve time; the catalog itself only
// carries names.
type ItemKind int

const (
	KindFile ItemKind = iota
	KindDir
)

// String returns the kind as a short label for logs and reports.
func (k ItemKind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Item is one settings entry resolved from a source vault.
type Item struct {
	// Name is the entry name within the settings sub-directory
	Name string

	// Kind records whether the source entry is a file or a directory
	Kind ItemKind
}

// Catalog is the ordered list of settings entry names eligible for copying.
// It is process-wide configuration, passed in explicitly so tests can
// substitute their own.
type Catalog []string
