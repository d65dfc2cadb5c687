package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"giramae/internal/domain/entities"
)

// Marketplace holds the exchange rules read from the environment.
//
// Supported env vars:
//   - TAXA_TRANSACAO_PERCENT (default: 10)
//   - RESERVATION_TTL (default: 48h)
//   - EXPIRATION_BATCH_SIZE (default: 50)
//   - GIRINHA_PRECO_MANUAL (BRL per Girinha, default: 1.00)
//   - GIRINHA_COMPRA_MAX (default: 999)
//   - QUEUE_CACHE_TTL (default: 30s)
//   - METAS_CONFIG (e.g. "bronze:5:10,prata:15:25,ouro:30:50,diamante:60:100")
type Marketplace struct {
	FeePercent          float64
	ReservationTTL      time.Duration
	ExpirationBatchSize int
	GirinhaPrice        float64
	MaxGirinhaPurchase  int
	QueueCacheTTL       time.Duration
	GoalTiers           []entities.GoalTier
}

const (
	MaxExpirationBatchSize = 500
)

func LoadMarketplace() Marketplace {
	m := Marketplace{
		FeePercent:          getenvFloat("TAXA_TRANSACAO_PERCENT", 10),
		ReservationTTL:      getenvDuration("RESERVATION_TTL", 48*time.Hour),
		ExpirationBatchSize: getenvInt("EXPIRATION_BATCH_SIZE", 50),
		GirinhaPrice:        getenvFloat("GIRINHA_PRECO_MANUAL", 1.00),
		MaxGirinhaPurchase:  getenvInt("GIRINHA_COMPRA_MAX", 999),
		QueueCacheTTL:       getenvDuration("QUEUE_CACHE_TTL", 30*time.Second),
		GoalTiers:           entities.DefaultGoalTiers(),
	}
	if raw := strings.TrimSpace(os.Getenv("METAS_CONFIG")); raw != "" {
		tiers, err := ParseGoalTiers(raw)
		if err != nil {
			log.Printf("[config] invalid METAS_CONFIG, using defaults err=%v", err)
		} else {
			m.GoalTiers = tiers
		}
	}
	if m.FeePercent < 0 || m.FeePercent > 100 {
		log.Printf("[config] TAXA_TRANSACAO_PERCENT out of range value=%v, using 10", m.FeePercent)
		m.FeePercent = 10
	}
	return m
}

// ParseGoalTiers parses "tier:threshold:bonus" entries separated by commas.
func ParseGoalTiers(raw string) ([]entities.GoalTier, error) {
	parts := strings.Split(raw, ",")
	tiers := make([]entities.GoalTier, 0, len(parts))
	for _, p := range parts {
		fields := strings.Split(strings.TrimSpace(p), ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid tier %q", p)
		}
		threshold, err := strconv.Atoi(fields[1])
		if err != nil || threshold <= 0 {
			return nil, fmt.Errorf("invalid threshold in %q", p)
		}
		bonus, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || bonus < 0 {
			return nil, fmt.Errorf("invalid bonus in %q", p)
		}
		tiers = append(tiers, entities.GoalTier{
			Tipo:              entities.GoalTierName(strings.ToLower(fields[0])),
			TrocasNecessarias: threshold,
			GirinhasBonus:     bonus,
		})
	}
	return tiers, nil
}

// GetDSN builds the Postgres DSN from DATABASE_* variables.
func GetDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		GetenvDefault("DATABASE_HOST", "localhost"),
		GetenvDefault("DATABASE_USER", "postgres"),
		os.Getenv("DATABASE_PASSWORD"),
		GetenvDefault("DATABASE_NAME", "giramae"),
		GetenvDefault("DATABASE_PORT", "5432"),
		GetenvDefault("DATABASE_SSLMODE", "disable"),
		GetenvDefault("DATABASE_TIMEZONE", "America/Sao_Paulo"),
	)
}

func GetenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// IsEnabled reads boolean-ish switches the same way across the service.
func IsEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
