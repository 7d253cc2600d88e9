package ports

import (
	"context"

	"github.com/ser-kenya/ser-api/internal/core/domain"
)

// --- Create DTOs ---

type CreateProductInput struct {
	Name        string
	PriceKES    float64
	ImageURL    string
	Description string
	Featured    bool
}

type CreateEventInput struct {
	Title       string
	EventDate   string
	Location    string
	Description string
}

type CreatePostInput struct {
	Title    string
	Slug     string
	BodyMD   string
	CoverURL string
	// Published is nil when the field was omitted from the payload, in
	// which case the post defaults to published.
	Published *bool
}

type CreateGalleryItemInput struct {
	Title    string
	ImageURL string
	Category string
	Featured bool
}

type ContentService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error)

	ListEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, in CreateEventInput) (*domain.Event, error)

	ListPosts(ctx context.Context) ([]domain.Post, error)
	CreatePost(ctx context.Context, in CreatePostInput) (*domain.Post, error)

	ListGalleryItems(ctx context.Context) ([]domain.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, in CreateGalleryItemInput) (*domain.GalleryItem, error)
}
