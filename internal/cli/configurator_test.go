package cli

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/agbru/primefind/internal/config"
)

func TestConfiguratorRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		want   config.AppConfig
		errOut string
	}{
		{
			name:  "all answers",
			input: "8\n16\n1\n2\n",
			want:  config.AppConfig{Threads: 8, Exponent: 16, PrintMode: "immediate", Scheme: "divisibility"},
		},
		{
			name:  "empty answers keep current values",
			input: "\n\n\n\n",
			want:  config.AppConfig{Threads: 2, Exponent: config.DefaultExponent, PrintMode: "wait", Scheme: "range"},
		},
		{
			name:   "invalid answers re-prompt",
			input:  "0\nabc\n3\n31\n0\n5\n9\n2\nx\n1",
			want:   config.AppConfig{Threads: 3, Exponent: 5, PrintMode: "wait", Scheme: "range"},
			errOut: "Invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start := config.AppConfig{Threads: 2, MaxNumber: 500, PrintMode: "deferred", Scheme: "range"}
			var out strings.Builder
			got, err := NewConfigurator(strings.NewReader(tt.input), &out).Run(start)
			if err != nil {
				t.Fatalf("Run: %v\n%s", err, out.String())
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if tt.errOut != "" && !strings.Contains(out.String(), tt.errOut) {
				t.Errorf("expected %q in prompts:\n%s", tt.errOut, out.String())
			}
		})
	}
}

func TestConfiguratorInputClosed(t *testing.T) {
	t.Parallel()
	_, err := NewConfigurator(strings.NewReader("4\n"), io.Discard).Run(config.AppConfig{Threads: 1})
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("err = %v, want ErrInputClosed", err)
	}
}

func TestAskConfigure(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\ny\n", true},
	}
	for _, tt := range tests {
		got, err := NewConfigurator(strings.NewReader(tt.input), io.Discard).AskConfigure()
		if err != nil {
			t.Fatalf("AskConfigure(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("AskConfigure(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
