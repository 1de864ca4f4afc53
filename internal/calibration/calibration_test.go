package calibration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/agbru/primefind/internal/config"
	"github.com/agbru/primefind/internal/ui"
)

func TestRun(t *testing.T) {
	ui.InitTheme(true, nil)
	tests := []struct {
		scheme config.Scheme
		want   config.Scheme
	}{
		{config.SchemeRange, config.SchemeRange},
		{config.SchemeDivisibility, config.SchemeDivisibility},
		{config.SchemeAll, config.SchemeRange},
	}
	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			var out bytes.Buffer
			res, err := Run(context.Background(), Options{
				Scheme:       tt.scheme,
				UpperBound:   2000,
				WorkerCounts: []int{1, 2, 4},
				Repeats:      2,
			}, &out)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Scheme != tt.want || res.UpperBound != 2000 {
				t.Errorf("result %+v", res)
			}
			if res.BestWorkers < 1 || res.BestWorkers > 4 {
				t.Errorf("BestWorkers = %d", res.BestWorkers)
			}
			for _, r := range res.results {
				if r.Primes != 303 {
					t.Errorf("workers %d found %d primes, want 303", r.Workers, r.Primes)
				}
			}
			s := out.String()
			for _, want := range []string{"Calibration Summary", "Threads", "(Optimal)"} {
				if !strings.Contains(s, want) {
					t.Errorf("output missing %q:\n%s", want, s)
				}
			}
		})
	}
}

func TestRunInvalidWorkers(t *testing.T) {
	_, err := Run(context.Background(), Options{
		Scheme:       config.SchemeRange,
		UpperBound:   100,
		WorkerCounts: []int{0},
	}, &bytes.Buffer{})
	if err == nil {
		t.Error("expected an error when no worker count can run")
	}
}

func TestApplyAndOutput(t *testing.T) {
	ui.InitTheme(true, nil)
	cfg := config.Defaults()
	res := Result{Scheme: config.SchemeRange, BestWorkers: 6}
	if got := Apply(cfg, res); got.Threads != 6 {
		t.Errorf("Threads = %d, want 6", got.Threads)
	}
	if got := Apply(cfg, Result{}); got.Threads != cfg.Threads {
		t.Error("an empty result must not change the thread count")
	}

	var out bytes.Buffer
	PrintCalibrationOutput(res, &out)
	if !strings.Contains(out.String(), "best threads=6") {
		t.Errorf("got %q", out.String())
	}
}
