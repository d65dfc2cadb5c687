package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"
)

var ErrInvalidDeviceToken = errors.New("invalid device token")

// registrationBackoff is the wait before each retry of endpoint creation.
var registrationBackoff = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

// INotificationUseCase registers push devices and delivers notifications to them.
//
// Registration retries endpoint creation with backoff; delivery is attempted once per
// endpoint and failures are only logged.

type INotificationUseCase interface {
	RegisterDevice(ctx context.Context, userID, deviceToken string) (string, error)
	Notify(ctx context.Context, userID string, n entities.PushNotification) error
}

type NotificationUseCase struct {
	publisher interfaces.IPushPublisher
	subs      interfaces.IPushSubscriptionRepository
	sleep     func(ctx context.Context, d time.Duration) error
}

var (
	_ INotificationUseCase = (*NotificationUseCase)(nil)
	_ interfaces.INotifier = (*NotificationUseCase)(nil)
)

func NewNotificationUseCase(publisher interfaces.IPushPublisher, subs interfaces.IPushSubscriptionRepository) *NotificationUseCase {
	return &NotificationUseCase{publisher: publisher, subs: subs, sleep: sleepContext}
}

func (u *NotificationUseCase) RegisterDevice(ctx context.Context, userID, deviceToken string) (string, error) {
	userID = strings.TrimSpace(userID)
	deviceToken = strings.TrimSpace(deviceToken)
	if userID == "" {
		return "", ErrInvalidUserID
	}
	if deviceToken == "" {
		return "", ErrInvalidDeviceToken
	}
	if u.publisher == nil || u.subs == nil {
		return "", errors.New("push notifications not configured")
	}

	var endpoint string
	var err error
	for attempt := 0; ; attempt++ {
		endpoint, err = u.publisher.CreateEndpoint(ctx, deviceToken)
		if err == nil {
			break
		}
		if attempt >= len(registrationBackoff) {
			log.Printf("[push][usecase] register device gave up user_id=%s attempts=%d err=%v", userID, attempt+1, err)
			return "", fmt.Errorf("create push endpoint: %w", err)
		}
		log.Printf("[push][usecase] register device retry user_id=%s attempt=%d wait=%s err=%v", userID, attempt+1, registrationBackoff[attempt], err)
		if serr := u.sleep(ctx, registrationBackoff[attempt]); serr != nil {
			return "", serr
		}
	}

	if err := u.subs.Save(ctx, userID, deviceToken, endpoint); err != nil {
		return "", fmt.Errorf("save push subscription: %w", err)
	}
	log.Printf("[push][usecase] device registered user_id=%s", userID)
	return endpoint, nil
}

func (u *NotificationUseCase) Notify(ctx context.Context, userID string, n entities.PushNotification) error {
	if u.publisher == nil || u.subs == nil {
		return nil
	}
	endpoints, err := u.subs.ListEndpoints(ctx, userID)
	if err != nil {
		return fmt.Errorf("list push endpoints: %w", err)
	}
	if len(endpoints) == 0 {
		return nil
	}
	payload, err := json.Marshal(n.Payload())
	if err != nil {
		return err
	}
	failed := 0
	for _, endpoint := range endpoints {
		if err := u.publisher.Publish(ctx, endpoint, payload); err != nil {
			failed++
			log.Printf("[push][usecase] deliver failed user_id=%s type=%s err=%v", userID, n.Type, err)
		}
	}
	if failed == len(endpoints) {
		return fmt.Errorf("push delivery failed for all %d endpoints", failed)
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
