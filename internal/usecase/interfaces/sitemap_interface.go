package interfaces

import (
	"context"

	"giramae/internal/domain/entities"
)

// IBlogRepository lists the published blog content that sitemaps expose.

type IBlogRepository interface {
	ListPublishedPosts(ctx context.Context) ([]entities.Post, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	ListTags(ctx context.Context) ([]entities.Tag, error)
}

// ISitemapUpstream fetches a generated sitemap document by name from the functions host.
type ISitemapUpstream interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}
