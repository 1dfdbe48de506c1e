package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/careermap/careermap-api/internal/core/domain"
)

type captureService struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
	done   chan struct{}
}

func newCaptureService(expect int) *captureService {
	return &captureService{done: make(chan struct{}, expect)}
}

func (s *captureService) Process(_ context.Context, event domain.ActivityEvent) error {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
	s.done <- struct{}{}
	return nil
}

func (s *captureService) Recent(_ context.Context, _ int) ([]domain.ActivityEvent, error) {
	return nil, nil
}

func (s *captureService) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d of %d", i+1, n)
		}
	}
}

func TestDispatcherProcessesEvents(t *testing.T) {
	svc := newCaptureService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, id := range []string{"u1", "u2", "u1"} {
		d.Record(domain.ActivityEvent{Type: domain.ActivityLogin, UserID: id})
	}
	svc.wait(t, 3)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.events) != 3 {
		t.Errorf("processed %d events, want 3", len(svc.events))
	}
}

func TestDispatcherShardingIsStable(t *testing.T) {
	d := NewDispatcher(4, newCaptureService(0), zerolog.Nop())

	for _, id := range []string{"", "u1", "a-much-longer-user-id"} {
		first := d.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shardIndex(%q) unstable: %d then %d", id, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Errorf("shardIndex(%q) = %d, out of range", id, first)
		}
	}
}

func TestDispatcherRecordNeverBlocks(t *testing.T) {
	// Workers are deliberately not started, so every buffer fills up and
	// further events must be dropped instead of blocking the caller.
	d := NewDispatcher(1, newCaptureService(0), zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			d.Record(domain.ActivityEvent{Type: domain.ActivityLogin, UserID: "u1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full queue")
	}
}

func TestDispatcherDefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newCaptureService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("worker count = %d, want %d", len(d.workers), defaultWorkers)
	}
}
