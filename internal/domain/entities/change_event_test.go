package entities

import (
	"encoding/json"
	"testing"
)

func TestChangeEvent_IsGoalUnlock(t *testing.T) {
	before := Goal{UserID: "u1", TipoMeta: GoalTierBronze, TrocasNecessarias: 5, GirinhasBonus: 10}
	after := before
	after.Conquistado = true

	ev := NewGoalUnlockedEvent(before, after)
	if !ev.IsGoalUnlock() {
		t.Fatalf("expected unlock")
	}

	// survives a JSON round trip through the broker
	raw, _ := json.Marshal(ev)
	var decoded ChangeEvent
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decoded.IsGoalUnlock() {
		t.Fatalf("expected unlock after decoding")
	}

	already := NewGoalUnlockedEvent(after, after)
	if already.IsGoalUnlock() {
		t.Fatalf("true -> true is not an unlock")
	}

	noOld := ChangeEvent{Table: ChangeTableMetasUsuarios, Type: ChangeUpdate, New: GoalRecord(after)}
	if noOld.IsGoalUnlock() {
		t.Fatalf("missing old record is not an unlock")
	}

	wrongTable := ev
	wrongTable.Table = ChangeTableReservas
	if wrongTable.IsGoalUnlock() {
		t.Fatalf("reservas events are never unlocks")
	}
}

func TestChangeEvent_ItemID(t *testing.T) {
	r := Reservation{ID: "r1", ItemID: "i1", Status: ReservationStatusPendente}
	ev := NewReservationEvent(ChangeInsert, "u1", nil, r)
	if ev.ItemID() != "i1" {
		t.Fatalf("expected i1, got %q", ev.ItemID())
	}
	if (ChangeEvent{}).ItemID() != "" {
		t.Fatalf("expected empty item id")
	}
}
