package search_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/primefind/internal/config"
	"github.com/agbru/primefind/internal/search"
	"github.com/agbru/primefind/internal/search/mocks"
)

// workerIn matches notifications from a worker id in [1, max].
type workerIn struct{ max int }

func (m workerIn) Matches(x interface{}) bool {
	n, ok := x.(search.Notification)
	return ok && n.Worker >= 1 && n.Worker <= m.max && !n.At.IsZero()
}

func (m workerIn) String() string { return "notification from a valid worker" }

func TestCoordinator_NotifiesEachPrimeOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)

	// pi(30) = 10
	notifier.EXPECT().Notify(workerIn{max: 4}).Times(10)

	c := search.NewCoordinator(search.WithNotifier(notifier))
	cfg := config.SearchConfig{Workers: 4, UpperBound: 30, EmitMode: config.EmitImmediate, Scheme: config.SchemeRange}
	if _, err := c.Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestCoordinator_DeferredModeNeverNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any()).Times(0)

	c := search.NewCoordinator(search.WithNotifier(notifier))
	cfg := config.SearchConfig{Workers: 3, UpperBound: 30, EmitMode: config.EmitDeferred, Scheme: config.SchemeDivisibility}
	if _, err := c.Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestCoordinator_NotifiesSpecificPrime(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)

	// N=10, W=4: units [1-2] [3-4] [5-6] [7-10]
	notifier.EXPECT().Notify(gomock.AssignableToTypeOf(search.Notification{})).Do(func(n search.Notification) {
		want := map[int]int{2: 1, 3: 2, 5: 3, 7: 4}
		if want[n.Value] != n.Worker {
			t.Errorf("prime %d reported by worker %d, want worker %d", n.Value, n.Worker, want[n.Value])
		}
	}).Times(4)

	c := search.NewCoordinator(search.WithNotifier(notifier))
	cfg := config.SearchConfig{Workers: 4, UpperBound: 10, EmitMode: config.EmitImmediate, Scheme: config.SchemeRange}
	if _, err := c.Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}
