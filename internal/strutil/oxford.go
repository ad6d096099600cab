// Package strutil holds small text-formatting helpers shared by debug and
// report-facing String() methods across the module.
package strutil

import "strings"

// Oxford joins items with commas and a trailing "and", adding the serial
// comma once there are three or more items ("a, b, and c"). Two items join
// with a bare "and" ("a and b"); a single item is returned unchanged.
func Oxford(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
