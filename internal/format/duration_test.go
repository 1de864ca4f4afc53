package format

import (
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "0µs"},
		{10 * time.Microsecond, "10µs"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.expected {
			t.Errorf("FormatExecutionDuration(%v) = %s; want %s", tt.d, got, tt.expected)
		}
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"123", "123"},
		{"1234", "1,234"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumberString(tt.input); got != tt.expected {
			t.Errorf("FormatNumberString(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

// TestFormatClockAndDateTime verifies report timestamp layouts.
func TestFormatClockAndDateTime(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 3, 9, 7, 5, 4, 321_000_000, time.UTC)
	if got := FormatClock(ts); got != "07:05:04.321" {
		t.Errorf("FormatClock = %q", got)
	}
	if got := FormatDateTime(ts); got != "2024-03-09 07:05:04" {
		t.Errorf("FormatDateTime = %q", got)
	}
	if got := FormatSeconds(1500 * time.Millisecond); got != "1.500000 seconds" {
		t.Errorf("FormatSeconds = %q", got)
	}
}

func TestFormatCountAndBytes(t *testing.T) {
	t.Parallel()
	if got := FormatCount(82025); got != "82,025" {
		t.Errorf("FormatCount = %q", got)
	}
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 << 20, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
