// Package backup names, finds and removes the timestamped backup entries
// osm leaves behind when it overwrites a settings item.
package backup

import (
	"regexp"
	"time"
)

// TimestampFormat is the UTC timestamp appended to backup names. It is
// ISO-8601 shaped with microsecond precision; microseconds keep names
// collision-free in practice, though two renames within the same
// microsecond would still collide.
const TimestampFormat = "2006-01-02T15:04:05.000000"

// Clock supplies the current time. Injected so plans applied in dry-run and
// live mode can be compared with a fixed clock in tests.
type Clock func() time.Time

// timestampPattern recognizes the suffix Name produces. Keep it in sync
// with TimestampFormat.
var timestampPattern = regexp.MustCompile(
	`^(.+)-(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}Z)$`)

// Name returns the backup name for original at the clock's current time,
// e.g. "config-2021-05-23T23:57:24.141428Z".
func Name(original string, clock Clock) string {
	return original + "-" + clock().UTC().Format(TimestampFormat) + "Z"
}

// Recognize reports whether name is a backup entry produced by Name, and if
// so, the original item name it was made from.
func Recognize(name string) (original string, ok bool) {
	m := timestampPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}
