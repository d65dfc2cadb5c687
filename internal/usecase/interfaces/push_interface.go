package interfaces

import "context"

// IPushPublisher delivers push payloads to device endpoints (SNS platform endpoints).

type IPushPublisher interface {
	CreateEndpoint(ctx context.Context, deviceToken string) (string, error)
	Publish(ctx context.Context, endpoint string, payload []byte) error
}

// IPushSubscriptionRepository stores the endpoints registered per user.
type IPushSubscriptionRepository interface {
	Save(ctx context.Context, userID string, deviceToken string, endpoint string) error
	ListEndpoints(ctx context.Context, userID string) ([]string, error)
}
