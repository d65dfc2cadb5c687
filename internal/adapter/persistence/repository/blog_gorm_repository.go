package repository

import (
	"context"
	"time"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const blogStatusPublished = "published"

// BlogGormRepository reads blog content for sitemap generation.
type BlogGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IBlogRepository = (*BlogGormRepository)(nil)

func NewBlogGormRepository(db *gorm.DB) *BlogGormRepository {
	return &BlogGormRepository{db: db}
}

func (r *BlogGormRepository) ListPublishedPosts(ctx context.Context) ([]entities.Post, error) {
	var rows []BlogPostModel
	err := r.db.WithContext(ctx).
		Where("status = ?", blogStatusPublished).
		Order("published_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Post, 0, len(rows))
	for _, m := range rows {
		var published time.Time
		if m.PublishedAt != nil {
			published = *m.PublishedAt
		}
		out = append(out, entities.Post{
			Slug:        m.Slug,
			Title:       m.Title,
			PublishedAt: published,
			UpdatedAt:   m.UpdatedAt,
		})
	}
	return out, nil
}

func (r *BlogGormRepository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var rows []BlogCategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Category, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Category{Name: m.Name, Slug: m.Slug, UpdatedAt: m.UpdatedAt})
	}
	return out, nil
}

func (r *BlogGormRepository) ListTags(ctx context.Context) ([]entities.Tag, error) {
	var rows []BlogTagModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Tag, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Tag{Name: m.Name, Slug: m.Slug, UpdatedAt: m.UpdatedAt})
	}
	return out, nil
}
