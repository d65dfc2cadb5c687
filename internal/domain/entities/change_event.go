package entities

import "time"

// ChangeTable names the tables whose row changes are streamed to clients.
type ChangeTable string

const (
	ChangeTableReservas      ChangeTable = "reservas"
	ChangeTableMetasUsuarios ChangeTable = "metas_usuarios"
)

type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// ChangeEvent is a row-level change notification scoped to one user.
// Old is empty for inserts and New is empty for deletes.
type ChangeEvent struct {
	Table      ChangeTable    `json:"table"`
	Type       ChangeType     `json:"type"`
	UserID     string         `json:"user_id"`
	Old        map[string]any `json:"old,omitempty"`
	New        map[string]any `json:"new,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func GoalRecord(g Goal) map[string]any {
	rec := map[string]any{
		"user_id":            g.UserID,
		"tipo_meta":          string(g.TipoMeta),
		"trocas_necessarias": g.TrocasNecessarias,
		"girinhas_bonus":     g.GirinhasBonus,
		"conquistado":        g.Conquistado,
	}
	if g.DataConquista != nil {
		rec["data_conquista"] = g.DataConquista.UTC().Format(time.RFC3339Nano)
	}
	return rec
}

func ReservationRecord(r Reservation) map[string]any {
	return map[string]any{
		"id":               r.ID,
		"item_id":          r.ItemID,
		"usuario_reservou": r.UsuarioReservou,
		"usuario_item":     r.UsuarioItem,
		"status":           string(r.Status),
		"valor_girinhas":   r.ValorGirinhas,
	}
}

// NewGoalUnlockedEvent builds the UPDATE emitted when a tier flips to conquistado.
func NewGoalUnlockedEvent(before, after Goal) ChangeEvent {
	return ChangeEvent{
		Table:      ChangeTableMetasUsuarios,
		Type:       ChangeUpdate,
		UserID:     after.UserID,
		Old:        GoalRecord(before),
		New:        GoalRecord(after),
		OccurredAt: time.Now().UTC(),
	}
}

// NewReservationEvent builds a reservas change addressed to userID.
func NewReservationEvent(kind ChangeType, userID string, before *Reservation, after Reservation) ChangeEvent {
	ev := ChangeEvent{
		Table:      ChangeTableReservas,
		Type:       kind,
		UserID:     userID,
		New:        ReservationRecord(after),
		OccurredAt: time.Now().UTC(),
	}
	if before != nil {
		ev.Old = ReservationRecord(*before)
	}
	return ev
}

// IsGoalUnlock reports whether the event is a metas_usuarios UPDATE where
// conquistado moved from false to true.
func (e ChangeEvent) IsGoalUnlock() bool {
	if e.Table != ChangeTableMetasUsuarios || e.Type != ChangeUpdate {
		return false
	}
	before, _ := e.Old["conquistado"].(bool)
	after, _ := e.New["conquistado"].(bool)
	_, hadOld := e.Old["conquistado"]
	return hadOld && !before && after
}

// ItemID returns the item referenced by a reservas event, if any.
func (e ChangeEvent) ItemID() string {
	for _, rec := range []map[string]any{e.New, e.Old} {
		if id, ok := rec["item_id"].(string); ok && id != "" {
			return id
		}
	}
	return ""
}
