package ports

import (
	"context"

	"github.com/ser-kenya/ser-api/internal/core/domain"
)

// ContentRepository defines the persistence interface for the four content
// collections. Insert methods assign the ID on the passed value. InsertPost
// returns domain.ErrDuplicateSlug when the slug unique index rejects the row.
type ContentRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	InsertProduct(ctx context.Context, p *domain.Product) error

	ListEvents(ctx context.Context) ([]domain.Event, error)
	InsertEvent(ctx context.Context, e *domain.Event) error

	ListPublishedPosts(ctx context.Context) ([]domain.Post, error)
	InsertPost(ctx context.Context, p *domain.Post) error

	ListGalleryItems(ctx context.Context) ([]domain.GalleryItem, error)
	InsertGalleryItem(ctx context.Context, g *domain.GalleryItem) error
}
