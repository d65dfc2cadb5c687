package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type stubProcessor struct {
	mu      sync.Mutex
	batches []int
	err     error
}

func (s *stubProcessor) ProcessExpiredBatch(_ context.Context, batchSize int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, batchSize)
	return 3, s.err
}

func TestExpirationScheduler_RunOnce(t *testing.T) {
	p := &stubProcessor{}
	s := NewExpirationScheduler(p, 25)

	s.RunOnce()
	p.err = errors.New("db down")
	s.RunOnce()

	if len(p.batches) != 2 || p.batches[0] != 25 {
		t.Fatalf("unexpected batches %v", p.batches)
	}
}

func TestExpirationScheduler_StartWithInvalidSpec(t *testing.T) {
	s := NewExpirationScheduler(&stubProcessor{}, 50)
	if err := s.Start("not a cron spec"); err != nil {
		t.Fatalf("expected fallback to default spec, got %v", err)
	}
	if len(s.cron.Entries()) != 1 {
		t.Fatalf("expected one scheduled entry, got %d", len(s.cron.Entries()))
	}
	s.Stop()
}
