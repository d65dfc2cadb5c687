package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"giramae/internal/domain/entities"
	mock_interfaces "giramae/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubSubscription struct {
	ch     chan entities.ChangeEvent
	once   sync.Once
	closed chan struct{}
}

func newStubSubscription() *stubSubscription {
	return &stubSubscription{ch: make(chan entities.ChangeEvent, 8), closed: make(chan struct{})}
}

func (s *stubSubscription) Events() <-chan entities.ChangeEvent { return s.ch }

func (s *stubSubscription) Close() error {
	s.drop()
	return nil
}

// drop ends the stream the way a lost connection does.
func (s *stubSubscription) drop() {
	s.once.Do(func() {
		close(s.closed)
		close(s.ch)
	})
}

func collectMessages() (func(RealtimeMessage), <-chan RealtimeMessage) {
	ch := make(chan RealtimeMessage, 16)
	return func(m RealtimeMessage) { ch <- m }, ch
}

func nextMessage(t *testing.T, ch <-chan RealtimeMessage) RealtimeMessage {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for realtime message")
	}
	return RealtimeMessage{}
}

func expectNoMessage(t *testing.T, ch <-chan RealtimeMessage) {
	t.Helper()
	select {
	case m := <-ch:
		t.Fatalf("unexpected message %+v", m)
	case <-time.After(50 * time.Millisecond):
	}
}

func goalUnlock(userID string, tier entities.GoalTierName, before bool) entities.ChangeEvent {
	old := entities.Goal{UserID: userID, TipoMeta: tier, GirinhasBonus: 10, Conquistado: before}
	updated := old
	updated.Conquistado = true
	return entities.NewGoalUnlockedEvent(old, updated)
}

func TestChangeListener_EnsureSubscribedIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	broker := mock_interfaces.NewMockIChangeBroker(ctrl)
	sub := newStubSubscription()
	broker.EXPECT().Subscribe(gomock.Any(), "u1").Return(sub, nil).Times(1)

	l := NewChangeListener(broker, nil, nil)
	for i := 0; i < 3; i++ {
		if err := l.EnsureSubscribed(context.Background(), "u1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if l.State() != ListenerSubscribed || l.UserID() != "u1" {
		t.Fatalf("expected subscribed to u1, got %s %s", l.State(), l.UserID())
	}

	l.Teardown()
	if l.State() != ListenerUnsubscribed {
		t.Fatalf("expected unsubscribed after teardown, got %s", l.State())
	}
	select {
	case <-sub.closed:
	default:
		t.Fatalf("expected subscription closed on teardown")
	}
	l.Teardown()
}

func TestChangeListener_SwitchUserTearsDownFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	broker := mock_interfaces.NewMockIChangeBroker(ctrl)
	first, second := newStubSubscription(), newStubSubscription()
	broker.EXPECT().Subscribe(gomock.Any(), "u1").Return(first, nil)
	broker.EXPECT().Subscribe(gomock.Any(), "u2").Return(second, nil)

	cache := NewQueueInfoCache(time.Minute)
	cache.Set("u1", "item-1", entities.QueueInfo{TotalFila: 1})
	emit, msgs := collectMessages()
	l := NewChangeListener(broker, cache, emit)

	if err := l.EnsureSubscribed(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.EnsureSubscribed(context.Background(), "u2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-first.closed:
	default:
		t.Fatalf("expected first subscription closed")
	}
	if _, ok := cache.Get("u1", "item-1"); ok {
		t.Fatalf("expected previous user's cache evicted")
	}
	if l.UserID() != "u2" {
		t.Fatalf("expected u2, got %s", l.UserID())
	}
	// Closing on purpose must not look like a lost connection.
	expectNoMessage(t, msgs)
	l.Teardown()
}

func TestChangeListener_TierUnlockedExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	broker := mock_interfaces.NewMockIChangeBroker(ctrl)
	sub := newStubSubscription()
	broker.EXPECT().Subscribe(gomock.Any(), "u1").Return(sub, nil)

	emit, msgs := collectMessages()
	l := NewChangeListener(broker, nil, emit)
	if err := l.EnsureSubscribed(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer l.Teardown()

	sub.ch <- goalUnlock("u1", entities.GoalTierBronze, true)
	sub.ch <- goalUnlock("u1", entities.GoalTierBronze, false)
	sub.ch <- goalUnlock("u1", entities.GoalTierBronze, false)

	m := nextMessage(t, msgs)
	if m.Type != MessageTierUnlocked || m.Payload["tipo_meta"] != "bronze" || m.Payload["girinhas_bonus"] != float64(10) {
		t.Fatalf("unexpected message %+v", m)
	}
	expectNoMessage(t, msgs)
}

func TestChangeListener_ReservationEventInvalidatesQueueCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	broker := mock_interfaces.NewMockIChangeBroker(ctrl)
	sub := newStubSubscription()
	broker.EXPECT().Subscribe(gomock.Any(), "u1").Return(sub, nil)

	cache := NewQueueInfoCache(time.Minute)
	cache.Set("u1", "item-1", entities.QueueInfo{TotalFila: 2, PosicaoUsuario: 2})
	cache.Set("u9", "item-1", entities.QueueInfo{TotalFila: 2})
	emit, msgs := collectMessages()
	l := NewChangeListener(broker, cache, emit)
	if err := l.EnsureSubscribed(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer l.Teardown()

	res := entities.Reservation{ID: "r1", ItemID: "item-1", UsuarioReservou: "u1", UsuarioItem: "owner", Status: entities.ReservationStatusPendente}
	sub.ch <- entities.NewReservationEvent(entities.ChangeInsert, "u1", nil, res)

	m := nextMessage(t, msgs)
	if m.Type != MessageReservaAtualizada || m.Payload["evento"] != "INSERT" {
		t.Fatalf("unexpected message %+v", m)
	}
	if _, ok := cache.Get("u1", "item-1"); ok {
		t.Fatalf("expected item invalidated for the session")
	}
	if _, ok := cache.Get("u9", "item-1"); ok {
		t.Fatalf("expected item invalidated for every session")
	}
}

func TestChangeListener_LostSubscriptionRequestsResync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	broker := mock_interfaces.NewMockIChangeBroker(ctrl)
	first, second := newStubSubscription(), newStubSubscription()
	gomock.InOrder(
		broker.EXPECT().Subscribe(gomock.Any(), "u1").Return(first, nil),
		broker.EXPECT().Subscribe(gomock.Any(), "u1").Return(second, nil),
	)

	cache := NewQueueInfoCache(time.Minute)
	cache.Set("u1", "item-1", entities.QueueInfo{TotalFila: 3, PosicaoUsuario: 2})
	emit, msgs := collectMessages()
	l := NewChangeListener(broker, cache, emit)
	if err := l.EnsureSubscribed(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first.drop()
	if m := nextMessage(t, msgs); m.Type != MessageResync {
		t.Fatalf("expected resync, got %+v", m)
	}
	if info, ok := cache.Get("u1", "item-1"); ok {
		t.Fatalf("expected cached queue info to be evicted after loss, got %+v", info)
	}
	if l.State() != ListenerUnsubscribed {
		t.Fatalf("expected unsubscribed after loss, got %s", l.State())
	}
	if err := l.EnsureSubscribed(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.State() != ListenerSubscribed {
		t.Fatalf("expected resubscribed, got %s", l.State())
	}
	l.Teardown()
}

func TestChangeListener_SubscribeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	broker := mock_interfaces.NewMockIChangeBroker(ctrl)
	broker.EXPECT().Subscribe(gomock.Any(), "u1").Return(nil, errors.New("redis down"))

	l := NewChangeListener(broker, nil, nil)
	if err := l.EnsureSubscribed(context.Background(), "u1"); err == nil {
		t.Fatalf("expected error")
	}
	if l.State() != ListenerUnsubscribed {
		t.Fatalf("expected unsubscribed, got %s", l.State())
	}
	if err := l.EnsureSubscribed(context.Background(), ""); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
}
