package realtime

import (
	"context"
	"log"
	"sync"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"
)

const subscriptionBuffer = 64

// MemoryBroker delivers change events inside a single process. It backs local runs
// without Redis and the tests.
type MemoryBroker struct {
	mu   sync.RWMutex
	subs map[string]map[*memorySubscription]struct{}
}

var _ interfaces.IChangeBroker = (*MemoryBroker)(nil)

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{subs: map[string]map[*memorySubscription]struct{}{}}
}

// Publish never blocks: a subscriber whose buffer is full misses the event and
// catches up on its next resync.
func (b *MemoryBroker) Publish(_ context.Context, event entities.ChangeEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for sub := range b.subs[event.UserID] {
		select {
		case sub.ch <- event:
		default:
			log.Printf("[realtime][memory] subscriber buffer full user_id=%s table=%s", event.UserID, event.Table)
		}
	}
	return nil
}

func (b *MemoryBroker) Subscribe(_ context.Context, userID string) (interfaces.ISubscription, error) {
	sub := &memorySubscription{broker: b, userID: userID, ch: make(chan entities.ChangeEvent, subscriptionBuffer)}
	b.mu.Lock()
	if b.subs[userID] == nil {
		b.subs[userID] = map[*memorySubscription]struct{}{}
	}
	b.subs[userID][sub] = struct{}{}
	b.mu.Unlock()
	return sub, nil
}

// Subscribers reports how many open subscriptions a user has.
func (b *MemoryBroker) Subscribers(userID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[userID])
}

type memorySubscription struct {
	broker *MemoryBroker
	userID string
	ch     chan entities.ChangeEvent
	once   sync.Once
}

func (s *memorySubscription) Events() <-chan entities.ChangeEvent { return s.ch }

func (s *memorySubscription) Close() error {
	s.once.Do(func() {
		b := s.broker
		b.mu.Lock()
		delete(b.subs[s.userID], s)
		if len(b.subs[s.userID]) == 0 {
			delete(b.subs, s.userID)
		}
		close(s.ch)
		b.mu.Unlock()
	})
	return nil
}
