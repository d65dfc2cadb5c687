package realtime

import (
	"context"
	"testing"
	"time"

	"giramae/internal/domain/entities"
)

func TestMemoryBroker_DeliversToUserOnly(t *testing.T) {
	b := NewMemoryBroker()
	ctx := context.Background()

	mine, err := b.Subscribe(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, _ := b.Subscribe(ctx, "u2")

	ev := entities.NewReservationEvent(entities.ChangeInsert, "u1", nil, entities.Reservation{ID: "r1", ItemID: "i1"})
	if err := b.Publish(ctx, ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case got := <-mine.Events():
		if got.ItemID() != "i1" {
			t.Fatalf("unexpected event %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("event not delivered")
	}
	select {
	case got := <-other.Events():
		t.Fatalf("event leaked to another user: %+v", got)
	default:
	}
}

func TestMemoryBroker_CloseEndsEvents(t *testing.T) {
	b := NewMemoryBroker()
	sub, _ := b.Subscribe(context.Background(), "u1")
	if b.Subscribers("u1") != 1 {
		t.Fatalf("expected one subscriber")
	}

	if err := sub.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = sub.Close()

	if _, ok := <-sub.Events(); ok {
		t.Fatalf("expected closed channel")
	}
	if b.Subscribers("u1") != 0 {
		t.Fatalf("expected no subscribers")
	}
	if err := b.Publish(context.Background(), entities.ChangeEvent{UserID: "u1"}); err != nil {
		t.Fatalf("publish after close should not fail: %v", err)
	}
}

func TestMemoryBroker_FullBufferDoesNotBlock(t *testing.T) {
	b := NewMemoryBroker()
	sub, _ := b.Subscribe(context.Background(), "u1")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriptionBuffer+10; i++ {
			_ = b.Publish(context.Background(), entities.ChangeEvent{UserID: "u1", Table: entities.ChangeTableReservas})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("publish blocked on a slow subscriber")
	}
	if len(sub.Events()) != subscriptionBuffer {
		t.Fatalf("expected buffer to be full, got %d", len(sub.Events()))
	}
}
