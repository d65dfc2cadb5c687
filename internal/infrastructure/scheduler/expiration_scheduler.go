package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultExpirationSpec runs the sweep every five minutes (seconds field first).
const DefaultExpirationSpec = "0 */5 * * * *"

type expiredReservationProcessor interface {
	ProcessExpiredBatch(ctx context.Context, batchSize int) (int, error)
}

// ExpirationScheduler triggers the expired-reservation sweep on a cron schedule.
type ExpirationScheduler struct {
	cron      *cron.Cron
	processor expiredReservationProcessor
	batchSize int
	timeout   time.Duration
}

func NewExpirationScheduler(processor expiredReservationProcessor, batchSize int) *ExpirationScheduler {
	return &ExpirationScheduler{
		cron:      cron.New(cron.WithSeconds()),
		processor: processor,
		batchSize: batchSize,
		timeout:   2 * time.Minute,
	}
}

// Start registers the sweep and starts the cron loop. An invalid spec falls back to
// DefaultExpirationSpec.
func (s *ExpirationScheduler) Start(spec string) error {
	if spec == "" {
		spec = DefaultExpirationSpec
	}
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		log.Printf("[scheduler] invalid EXPIRATION_CRON spec=%q err=%v, using default", spec, err)
		if _, err := s.cron.AddFunc(DefaultExpirationSpec, s.RunOnce); err != nil {
			return err
		}
	}
	s.cron.Start()
	log.Printf("[scheduler] expiration sweep scheduled spec=%q batch_size=%d", spec, s.batchSize)
	return nil
}

// Stop waits for a running sweep to finish.
func (s *ExpirationScheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *ExpirationScheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	n, err := s.processor.ProcessExpiredBatch(ctx, s.batchSize)
	if err != nil {
		log.Printf("[scheduler] expiration sweep failed processed=%d err=%v", n, err)
		return
	}
	log.Printf("[scheduler] expiration sweep done processed=%d elapsed=%s", n, time.Since(start).Round(time.Millisecond))
}
