package config

import (
	"testing"
	"time"

	"giramae/internal/domain/entities"
)

func TestLoadMarketplace_Defaults(t *testing.T) {
	for _, k := range []string{"TAXA_TRANSACAO_PERCENT", "RESERVATION_TTL", "EXPIRATION_BATCH_SIZE", "GIRINHA_PRECO_MANUAL", "METAS_CONFIG", "QUEUE_CACHE_TTL"} {
		t.Setenv(k, "")
	}
	m := LoadMarketplace()
	if m.FeePercent != 10 || m.ReservationTTL != 48*time.Hour || m.ExpirationBatchSize != 50 {
		t.Fatalf("unexpected defaults: %+v", m)
	}
	if m.GirinhaPrice != 1 || m.QueueCacheTTL != 30*time.Second {
		t.Fatalf("unexpected defaults: %+v", m)
	}
	if len(m.GoalTiers) != 4 || m.GoalTiers[0].Tipo != entities.GoalTierBronze {
		t.Fatalf("unexpected tiers: %+v", m.GoalTiers)
	}
}

func TestLoadMarketplace_Overrides(t *testing.T) {
	t.Setenv("TAXA_TRANSACAO_PERCENT", "12,5")
	t.Setenv("RESERVATION_TTL", "2h")
	t.Setenv("METAS_CONFIG", "bronze:3:5, prata:6:10")
	m := LoadMarketplace()
	if m.FeePercent != 12.5 || m.ReservationTTL != 2*time.Hour {
		t.Fatalf("unexpected overrides: %+v", m)
	}
	if len(m.GoalTiers) != 2 || m.GoalTiers[1].TrocasNecessarias != 6 {
		t.Fatalf("unexpected tiers: %+v", m.GoalTiers)
	}
}

func TestLoadMarketplace_InvalidFeeFallsBack(t *testing.T) {
	t.Setenv("TAXA_TRANSACAO_PERCENT", "150")
	if m := LoadMarketplace(); m.FeePercent != 10 {
		t.Fatalf("expected fallback to 10, got %v", m.FeePercent)
	}
}

func TestParseGoalTiers_Errors(t *testing.T) {
	for _, raw := range []string{"bronze:5", "bronze:x:10", "bronze:5:-1", "bronze:0:1"} {
		if _, err := ParseGoalTiers(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
