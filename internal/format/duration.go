package format

import (
	"fmt"
	"strings"
	"time"
)

// Layouts used in run reports.
const (
	ClockLayout    = "15:04:05.000"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d\u00b5s", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatSeconds renders d as fractional seconds with six decimals.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f seconds", d.Seconds())
}

// FormatClock renders the wall-clock part of t with millisecond precision.
func FormatClock(t time.Time) string { return t.Format(ClockLayout) }

// FormatDateTime renders t as "YYYY-MM-DD HH:MM:SS".
func FormatDateTime(t time.Time) string { return t.Format(DateTimeLayout) }

// FormatNumberString inserts thousands separators into a decimal string.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/3 + 1)
	sb.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if sb.Len() > len(sign) {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string { return FormatNumberString(fmt.Sprint(n)) }

// FormatBytes renders a byte count using binary units.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
