package interfaces

import (
	"context"
	"time"

	"giramae/internal/domain/entities"
)

// IGoalRepository abstracts DynamoDB persistence for metas_usuarios.
//
//   - Seed creates missing tiers for a user and leaves existing ones untouched.
//   - MarkAchieved flips conquistado only if it is still false; the bool result tells
//     whether this call performed the flip.

type IGoalRepository interface {
	Seed(ctx context.Context, userID string, tiers []entities.GoalTier) error
	ListByUser(ctx context.Context, userID string) ([]entities.Goal, error)
	MarkAchieved(ctx context.Context, userID string, tier entities.GoalTierName, at time.Time) (entities.Goal, bool, error)
}
