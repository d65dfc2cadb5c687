package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"
)

type ListenerState int

const (
	ListenerUnsubscribed ListenerState = iota
	ListenerSubscribing
	ListenerSubscribed
)

func (s ListenerState) String() string {
	switch s {
	case ListenerSubscribing:
		return "subscribing"
	case ListenerSubscribed:
		return "subscribed"
	default:
		return "unsubscribed"
	}
}

const (
	MessageTierUnlocked      = "tier_unlocked"
	MessageReservaAtualizada = "reserva_atualizada"
	MessageResync            = "resync"
)

// RealtimeMessage is what a session's clients receive.
type RealtimeMessage struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// ChangeListener owns the change subscription of one user session.
//
// EnsureSubscribed is idempotent for the same user; asking for another user tears the
// current subscription down first. When the broker ends the subscription on its own the
// listener falls back to unsubscribed and emits a resync message.
type ChangeListener struct {
	broker interfaces.IChangeBroker
	cache  *QueueInfoCache
	emit   func(RealtimeMessage)

	mu       sync.Mutex
	state    ListenerState
	userID   string
	sub      interfaces.ISubscription
	gen      uint64
	unlocked map[entities.GoalTierName]struct{}
}

func NewChangeListener(broker interfaces.IChangeBroker, cache *QueueInfoCache, emit func(RealtimeMessage)) *ChangeListener {
	if emit == nil {
		emit = func(RealtimeMessage) {}
	}
	return &ChangeListener{broker: broker, cache: cache, emit: emit}
}

func (l *ChangeListener) State() ListenerState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *ChangeListener) UserID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.userID
}

func (l *ChangeListener) EnsureSubscribed(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidUserID
	}

	l.mu.Lock()
	if l.state != ListenerUnsubscribed && l.userID == userID {
		l.mu.Unlock()
		return nil
	}
	l.teardownLocked()
	l.gen++
	gen := l.gen
	l.state = ListenerSubscribing
	l.userID = userID
	l.mu.Unlock()

	sub, err := l.broker.Subscribe(ctx, userID)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.gen != gen {
		// Torn down or switched while subscribing.
		if err == nil {
			_ = sub.Close()
		}
		return nil
	}
	if err != nil {
		l.state = ListenerUnsubscribed
		l.userID = ""
		log.Printf("[realtime][listener] subscribe failed user_id=%s err=%v", userID, err)
		return fmt.Errorf("subscribe changes: %w", err)
	}
	l.sub = sub
	l.state = ListenerSubscribed
	l.unlocked = make(map[entities.GoalTierName]struct{})
	log.Printf("[realtime][listener] subscribed user_id=%s", userID)
	go l.pump(gen, userID, sub)
	return nil
}

func (l *ChangeListener) Teardown() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.teardownLocked()
}

func (l *ChangeListener) teardownLocked() {
	if l.state == ListenerUnsubscribed {
		return
	}
	l.gen++
	if l.sub != nil {
		_ = l.sub.Close()
	}
	if l.cache != nil && l.userID != "" {
		l.cache.EvictUser(l.userID)
	}
	log.Printf("[realtime][listener] teardown user_id=%s", l.userID)
	l.state = ListenerUnsubscribed
	l.userID = ""
	l.sub = nil
	l.unlocked = nil
}

func (l *ChangeListener) pump(gen uint64, userID string, sub interfaces.ISubscription) {
	for ev := range sub.Events() {
		l.handle(gen, ev)
	}

	l.mu.Lock()
	unexpected := l.gen == gen
	if unexpected {
		l.gen++
		l.state = ListenerUnsubscribed
		l.userID = ""
		l.sub = nil
		l.unlocked = nil
	}
	l.mu.Unlock()

	if unexpected {
		log.Printf("[realtime][listener] subscription lost user_id=%s", userID)
		if l.cache != nil {
			l.cache.EvictUser(userID)
		}
		l.emit(RealtimeMessage{Type: MessageResync})
	}
}

func (l *ChangeListener) handle(gen uint64, ev entities.ChangeEvent) {
	switch ev.Table {
	case entities.ChangeTableMetasUsuarios:
		if !ev.IsGoalUnlock() {
			return
		}
		tier := entities.GoalTierName(fmt.Sprint(ev.New["tipo_meta"]))
		l.mu.Lock()
		if l.gen != gen {
			l.mu.Unlock()
			return
		}
		if _, seen := l.unlocked[tier]; seen {
			l.mu.Unlock()
			return
		}
		l.unlocked[tier] = struct{}{}
		l.mu.Unlock()
		l.emit(RealtimeMessage{
			Type: MessageTierUnlocked,
			Payload: map[string]any{
				"tipo_meta":      string(tier),
				"girinhas_bonus": ev.New["girinhas_bonus"],
			},
		})

	case entities.ChangeTableReservas:
		if itemID := ev.ItemID(); itemID != "" && l.cache != nil {
			l.cache.InvalidateItem(itemID)
		}
		l.emit(RealtimeMessage{
			Type: MessageReservaAtualizada,
			Payload: map[string]any{
				"evento":  string(ev.Type),
				"reserva": ev.New,
			},
		})
	}
}
