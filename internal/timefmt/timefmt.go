// Package timefmt renders durations for human-readable build notices.
package timefmt

import (
	"fmt"
	"strings"
)

// Duration formats a millisecond count as "XhYmZs". The millisecond segment
// is appended only for sub-minute durations, space-separated only when a
// seconds segment precedes it.
func Duration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / 3_600_000
	rem := ms % 3_600_000
	m := rem / 60_000
	rem %= 60_000
	s := rem / 1_000
	rem %= 1_000

	var b strings.Builder
	if h > 0 {
		fmt.Fprintf(&b, "%dh ", h)
	}
	if h > 0 || m > 0 {
		fmt.Fprintf(&b, "%dm ", m)
	}
	if h > 0 || m > 0 || s > 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	if h == 0 && m == 0 && rem > 0 {
		if s > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%dms", rem)
	}
	return b.String()
}
