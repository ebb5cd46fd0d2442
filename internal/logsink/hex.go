package logsink

import (
	"fmt"
	"strings"
)

// FormatHex renders data as space-separated uppercase hex pairs with a line
// break every 16 bytes and an extra gap every 8. The grouping is part of the
// dump format consumed by tooling; do not change it casually.
func FormatHex(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 3)
	for i, b := range data {
		fmt.Fprintf(&sb, "%02X ", b)
		switch {
		case (i+1)%16 == 0:
			sb.WriteByte('\n')
		case (i+1)%8 == 0:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
