// Package filesystem provides filesystem implementations for osm.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an afero-backed one used by tests
// to run the whole engine against an in-memory tree.
package filesystem
