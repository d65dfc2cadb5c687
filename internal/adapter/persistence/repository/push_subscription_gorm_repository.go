package repository

import (
	"context"
	"time"

	"giramae/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PushSubscriptionGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPushSubscriptionRepository = (*PushSubscriptionGormRepository)(nil)

func NewPushSubscriptionGormRepository(db *gorm.DB) *PushSubscriptionGormRepository {
	return &PushSubscriptionGormRepository{db: db}
}

// Save upserts by device token, so a device that changes hands follows the latest user.
func (r *PushSubscriptionGormRepository) Save(ctx context.Context, userID string, deviceToken string, endpoint string) error {
	now := time.Now().UTC()
	m := PushSubscriptionModel{
		UserID:      userID,
		DeviceToken: deviceToken,
		EndpointArn: endpoint,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "endpoint_arn", "updated_at"}),
	}).Create(&m).Error
}

func (r *PushSubscriptionGormRepository) ListEndpoints(ctx context.Context, userID string) ([]string, error) {
	var endpoints []string
	err := r.db.WithContext(ctx).
		Model(&PushSubscriptionModel{}).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Pluck("endpoint_arn", &endpoints).Error
	if err != nil {
		return nil, err
	}
	return endpoints, nil
}
