package repository

import (
	"context"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ItemGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IItemRepository = (*ItemGormRepository)(nil)

func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

func (r *ItemGormRepository) Create(ctx context.Context, item entities.Item) (entities.Item, error) {
	m := toItemModel(item)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Item{}, err
	}
	return fromItemModel(m), nil
}

func (r *ItemGormRepository) GetByID(ctx context.Context, id string) (entities.Item, error) {
	var m ItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&m).Error; err != nil {
		return entities.Item{}, err
	}
	if m.ID == "" {
		return entities.Item{}, nil
	}
	return fromItemModel(m), nil
}
