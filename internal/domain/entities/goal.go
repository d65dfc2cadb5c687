package entities

import (
	"sort"
	"time"
)

// GoalTierName identifies one of the ordered achievement milestones (metas).
type GoalTierName string

const (
	GoalTierBronze   GoalTierName = "bronze"
	GoalTierPrata    GoalTierName = "prata"
	GoalTierOuro     GoalTierName = "ouro"
	GoalTierDiamante GoalTierName = "diamante"
)

// GoalTier is the configuration of a tier: how many completed exchanges unlock it
// and how many Girinhas it rewards.
type GoalTier struct {
	Tipo              GoalTierName `json:"tipo_meta"`
	TrocasNecessarias int          `json:"trocas_necessarias"`
	GirinhasBonus     float64      `json:"girinhas_bonus"`
}

func DefaultGoalTiers() []GoalTier {
	return []GoalTier{
		{Tipo: GoalTierBronze, TrocasNecessarias: 5, GirinhasBonus: 10},
		{Tipo: GoalTierPrata, TrocasNecessarias: 15, GirinhasBonus: 25},
		{Tipo: GoalTierOuro, TrocasNecessarias: 30, GirinhasBonus: 50},
		{Tipo: GoalTierDiamante, TrocasNecessarias: 60, GirinhasBonus: 100},
	}
}

// Goal is the per-user record of a tier (metas_usuarios).
//
// Conquistado only ever moves false -> true; the bonus is credited once per
// (user, tier) pair.
type Goal struct {
	UserID            string       `json:"user_id"`
	TipoMeta          GoalTierName `json:"tipo_meta"`
	TrocasNecessarias int          `json:"trocas_necessarias"`
	GirinhasBonus     float64      `json:"girinhas_bonus"`
	Conquistado       bool         `json:"conquistado"`
	DataConquista     *time.Time   `json:"data_conquista,omitempty"`
}

// GoalBoard is a user's goal list together with the number of completed exchanges.
// Its methods are pure and never touch the store.
type GoalBoard struct {
	Goals              []Goal
	CompletedExchanges int
}

func NewGoalBoard(goals []Goal, completed int) GoalBoard {
	sorted := make([]Goal, len(goals))
	copy(sorted, goals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TrocasNecessarias < sorted[j].TrocasNecessarias
	})
	return GoalBoard{Goals: sorted, CompletedExchanges: completed}
}

// Progress returns min(completed/threshold, 1) * 100 for the given tier.
// Unknown tiers report 0.
func (b GoalBoard) Progress(tier GoalTierName) float64 {
	for _, g := range b.Goals {
		if g.TipoMeta != tier {
			continue
		}
		if g.TrocasNecessarias <= 0 {
			return 100
		}
		ratio := float64(b.CompletedExchanges) / float64(g.TrocasNecessarias)
		if ratio > 1 {
			ratio = 1
		}
		return ratio * 100
	}
	return 0
}

// NextGoal returns the first non-achieved tier whose threshold exceeds the completed
// exchange count, in ascending threshold order.
func (b GoalBoard) NextGoal() (Goal, bool) {
	for _, g := range b.Goals {
		if !g.Conquistado && g.TrocasNecessarias > b.CompletedExchanges {
			return g, true
		}
	}
	return Goal{}, false
}

func (b GoalBoard) AchievedGoals() []Goal {
	out := make([]Goal, 0, len(b.Goals))
	for _, g := range b.Goals {
		if g.Conquistado {
			out = append(out, g)
		}
	}
	return out
}

func (b GoalBoard) TotalBonusEarned() float64 {
	total := 0.0
	for _, g := range b.AchievedGoals() {
		total += g.GirinhasBonus
	}
	return Round2(total)
}

// Unlockable returns the tiers not yet achieved whose threshold the completed count reached.
func (b GoalBoard) Unlockable() []Goal {
	out := make([]Goal, 0)
	for _, g := range b.Goals {
		if !g.Conquistado && g.TrocasNecessarias <= b.CompletedExchanges {
			out = append(out, g)
		}
	}
	return out
}
