package cli

import (
	"os"
	"testing"

	"github.com/agbru/primefind/internal/ui"
)

// Output assertions compare plain text, so colors stay disabled for the
// whole package run.
func TestMain(m *testing.M) {
	ui.InitTheme(true, nil)
	os.Exit(m.Run())
}
