package search

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/agbru/primefind/internal/config"
	apperrors "github.com/agbru/primefind/internal/errors"
)

// MockResultPresenter records presenter calls.
type MockResultPresenter struct {
	tableRows int
	presented *Outcome
}

func (m *MockResultPresenter) PresentComparisonTable(results []SchemeResult, _ io.Writer) {
	m.tableRows = len(results)
}

func (m *MockResultPresenter) PresentOutcome(o Outcome, _ io.Writer) {
	m.presented = &o
}

func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	primes := []int{2, 3, 5, 7}

	t.Run("consistent results succeed", func(t *testing.T) {
		t.Parallel()
		results := []SchemeResult{
			{Scheme: config.SchemeDivisibility, Outcome: Outcome{Primes: primes, Elapsed: 2 * time.Second}},
			{Scheme: config.SchemeRange, Outcome: Outcome{Primes: primes, Elapsed: time.Second}},
		}
		presenter := &MockResultPresenter{}
		var out bytes.Buffer
		code := AnalyzeComparisonResults(results, presenter, &out)
		if code != apperrors.ExitSuccess {
			t.Fatalf("expected success, got %d", code)
		}
		if presenter.tableRows != 2 {
			t.Errorf("expected 2 table rows, got %d", presenter.tableRows)
		}
		if presenter.presented == nil || presenter.presented.Elapsed != time.Second {
			t.Errorf("expected the fastest outcome to be presented, got %+v", presenter.presented)
		}
		if !strings.Contains(out.String(), "Global Status: Success") {
			t.Errorf("unexpected output %q", out.String())
		}
	})

	t.Run("mismatch is reported", func(t *testing.T) {
		t.Parallel()
		results := []SchemeResult{
			{Scheme: config.SchemeRange, Outcome: Outcome{Primes: primes}},
			{Scheme: config.SchemeDivisibility, Outcome: Outcome{Primes: primes[:3]}},
		}
		var out bytes.Buffer
		code := AnalyzeComparisonResults(results, &MockResultPresenter{}, &out)
		if code != apperrors.ExitErrorMismatch {
			t.Fatalf("expected mismatch exit code, got %d", code)
		}
		if !strings.Contains(out.String(), "CRITICAL ERROR") {
			t.Errorf("unexpected output %q", out.String())
		}
	})

	t.Run("all failed", func(t *testing.T) {
		t.Parallel()
		results := []SchemeResult{
			{Scheme: config.SchemeRange, Err: apperrors.ValidationError{Field: "num_threads", Message: "must be greater than zero"}},
			{Scheme: config.SchemeDivisibility, Err: errors.New("boom")},
		}
		var out bytes.Buffer
		code := AnalyzeComparisonResults(results, &MockResultPresenter{}, &out)
		if code != apperrors.ExitErrorConfig {
			t.Fatalf("expected config exit code from the first error, got %d", code)
		}
		if !strings.Contains(out.String(), "Global Status: Failure") {
			t.Errorf("unexpected output %q", out.String())
		}
	})
}
