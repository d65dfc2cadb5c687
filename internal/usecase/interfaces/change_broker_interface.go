package interfaces

import (
	"context"

	"giramae/internal/domain/entities"
)

// IChangeBroker fans row change events out to the sessions of the user they belong to.

type IChangeBroker interface {
	Publish(ctx context.Context, event entities.ChangeEvent) error
	Subscribe(ctx context.Context, userID string) (ISubscription, error)
}

// ISubscription delivers events until Close is called. Events is closed when the
// subscription ends, whether by Close or by losing the underlying connection.
type ISubscription interface {
	Events() <-chan entities.ChangeEvent
	Close() error
}
