package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ser-kenya/ser-api/internal/core/domain"
)

const (
	productsCollection = "products"
	eventsCollection   = "events"
	postsCollection    = "posts"
	galleryCollection  = "gallery_items"
)

// Per-type list orderings. These are the public contract of the list
// endpoints; EnsureIndexes builds the backing indexes from the same
// documents.
var (
	featuredNewestSort = bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}}
	eventDateSort      = bson.D{{Key: "event_date", Value: -1}}
	publishedAtSort    = bson.D{{Key: "published_at", Value: -1}}
	publishedFilter    = bson.M{"published": true}
)

// ContentRepository persists the four content collections. Each list
// carries its fixed, type-specific ordering; posts additionally filter to
// published rows only.
type ContentRepository struct {
	db       *mongo.Database
	products *mongo.Collection
	events   *mongo.Collection
	posts    *mongo.Collection
	gallery  *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		db:       db,
		products: db.Collection(productsCollection),
		events:   db.Collection(eventsCollection),
		posts:    db.Collection(postsCollection),
		gallery:  db.Collection(galleryCollection),
	}
}

func (r *ContentRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	// featured first, then newest
	return listAll[domain.Product](ctx, r.products, bson.M{}, featuredNewestSort)
}

func (r *ContentRepository) InsertProduct(ctx context.Context, p *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, productsCollection)
	if err != nil {
		return err
	}
	p.ID = id

	if _, err := r.products.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ContentRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return listAll[domain.Event](ctx, r.events, bson.M{}, eventDateSort)
}

func (r *ContentRepository) InsertEvent(ctx context.Context, e *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, eventsCollection)
	if err != nil {
		return err
	}
	e.ID = id

	if _, err := r.events.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *ContentRepository) ListPublishedPosts(ctx context.Context) ([]domain.Post, error) {
	return listAll[domain.Post](ctx, r.posts, publishedFilter, publishedAtSort)
}

func (r *ContentRepository) InsertPost(ctx context.Context, p *domain.Post) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, postsCollection)
	if err != nil {
		return err
	}
	p.ID = id

	if _, err := r.posts.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *ContentRepository) ListGalleryItems(ctx context.Context) ([]domain.GalleryItem, error) {
	return listAll[domain.GalleryItem](ctx, r.gallery, bson.M{}, featuredNewestSort)
}

func (r *ContentRepository) InsertGalleryItem(ctx context.Context, g *domain.GalleryItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, galleryCollection)
	if err != nil {
		return err
	}
	g.ID = id

	if _, err := r.gallery.InsertOne(ctx, g); err != nil {
		return fmt.Errorf("insert gallery item: %w", err)
	}
	return nil
}

// listAll runs a filtered, sorted find and decodes every document.
func listAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M, sort bson.D) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return items, nil
}

// EnsureIndexes creates the unique slug index on posts plus the indexes
// backing each list's sort order.
func (r *ContentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "published", Value: 1}, {Key: "published_at", Value: -1}}},
	}); err != nil {
		return fmt.Errorf("posts indexes: %w", err)
	}

	if _, err := r.products.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: featuredNewestSort}); err != nil {
		return fmt.Errorf("products index: %w", err)
	}
	if _, err := r.gallery.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: featuredNewestSort}); err != nil {
		return fmt.Errorf("gallery index: %w", err)
	}
	if _, err := r.events.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: eventDateSort}); err != nil {
		return fmt.Errorf("events index: %w", err)
	}
	return nil
}
