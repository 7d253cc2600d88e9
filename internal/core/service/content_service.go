package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ser-kenya/ser-api/internal/core/domain"
	"github.com/ser-kenya/ser-api/internal/core/ports"
	"github.com/ser-kenya/ser-api/internal/pkg/slug"
)

// Cache keys for the public list endpoints.
const (
	CacheKeyProducts = "cache:products"
	CacheKeyEvents   = "cache:events"
	CacheKeyPosts    = "cache:posts"
	CacheKeyGallery  = "cache:gallery"
)

// ContentService implements the four content resources: public ordered
// lists with a cache-aside layer, and admin-only creation. Structural
// field validation happens at the handler boundary; this layer owns the
// slug and publish policies, timestamps, and cache invalidation.
type ContentService struct {
	repo  ports.ContentRepository
	cache ports.ListCache
	log   zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, cache ports.ListCache, log zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, cache: cache, log: log}
}

func (s *ContentService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return listVia(ctx, s, CacheKeyProducts, s.repo.ListProducts)
}

func (s *ContentService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	p := &domain.Product{
		Name:        in.Name,
		PriceKES:    in.PriceKES,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Featured:    in.Featured,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.InsertProduct(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheKeyProducts)
	s.log.Info().Int64("id", p.ID).Str("name", p.Name).Msg("product created")
	return p, nil
}

func (s *ContentService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return listVia(ctx, s, CacheKeyEvents, s.repo.ListEvents)
}

func (s *ContentService) CreateEvent(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	e := &domain.Event{
		Title:       in.Title,
		EventDate:   in.EventDate,
		Location:    in.Location,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.InsertEvent(ctx, e); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheKeyEvents)
	s.log.Info().Int64("id", e.ID).Str("title", e.Title).Msg("event created")
	return e, nil
}

// ListPosts returns published posts only; drafts are never visible here.
func (s *ContentService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return listVia(ctx, s, CacheKeyPosts, s.repo.ListPublishedPosts)
}

// CreatePost derives the slug (supplied slug wins, otherwise the title)
// and applies the default-to-published policy: an omitted published field
// means the post goes live immediately, and PublishedAt is stamped iff
// the post is published at creation. Slug uniqueness is enforced solely
// by the store's unique index; a losing concurrent insert surfaces as
// domain.ErrDuplicateSlug.
func (s *ContentService) CreatePost(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	source := in.Slug
	if source == "" {
		source = in.Title
	}
	sl := slug.Make(source)
	if sl == "" {
		return nil, domain.ErrUnsluggable
	}

	published := true
	if in.Published != nil {
		published = *in.Published
	}

	now := time.Now().UTC()
	p := &domain.Post{
		Title:     in.Title,
		Slug:      sl,
		BodyMD:    in.BodyMD,
		CoverURL:  in.CoverURL,
		Published: published,
		CreatedAt: now,
	}
	if published {
		p.PublishedAt = &now
	}

	if err := s.repo.InsertPost(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheKeyPosts)
	s.log.Info().Int64("id", p.ID).Str("slug", p.Slug).Bool("published", p.Published).Msg("post created")
	return p, nil
}

func (s *ContentService) ListGalleryItems(ctx context.Context) ([]domain.GalleryItem, error) {
	return listVia(ctx, s, CacheKeyGallery, s.repo.ListGalleryItems)
}

func (s *ContentService) CreateGalleryItem(ctx context.Context, in ports.CreateGalleryItemInput) (*domain.GalleryItem, error) {
	g := &domain.GalleryItem{
		Title:     in.Title,
		ImageURL:  in.ImageURL,
		Category:  in.Category,
		Featured:  in.Featured,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.InsertGalleryItem(ctx, g); err != nil {
		return nil, err
	}
	s.invalidate(ctx, CacheKeyGallery)
	s.log.Info().Int64("id", g.ID).Str("title", g.Title).Msg("gallery item created")
	return g, nil
}

// listVia serves a public list through the cache-aside layer. Cache
// failures are logged and degrade to a direct store read; they never
// surface to the caller.
func listVia[T any](ctx context.Context, s *ContentService, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		var cached []T
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache read failed, falling back to store")
		} else if hit {
			return cached, nil
		}
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, items); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return items, nil
}

func (s *ContentService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
	}
}
