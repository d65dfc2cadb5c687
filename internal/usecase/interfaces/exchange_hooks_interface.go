package interfaces

import (
	"context"

	"giramae/internal/domain/entities"
)

// IExchangeRecorder reacts to a completed exchange for one participant (goal counting).

type IExchangeRecorder interface {
	RecordExchange(ctx context.Context, userID string) ([]entities.Goal, error)
}

// INotifier delivers a push notification to every device of a user.
type INotifier interface {
	Notify(ctx context.Context, userID string, n entities.PushNotification) error
}
