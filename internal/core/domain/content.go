package domain

import (
	"errors"
	"time"
)

var ErrDuplicateSlug = errors.New("slug already in use")
var ErrUnsluggable = errors.New("title does not reduce to a valid slug")

// Product is a shop item listed on the public site.
type Product struct {
	ID          int64     `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	PriceKES    float64   `json:"price_kes" bson:"price_kes"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Featured    bool      `json:"featured" bson:"featured"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Event is a calendar entry. EventDate is an ISO-8601 date (YYYY-MM-DD),
// which sorts chronologically as a plain string.
type Event struct {
	ID          int64     `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	EventDate   string    `json:"event_date" bson:"event_date"`
	Location    string    `json:"location" bson:"location"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Post is a blog entry. The slug is unique across all posts; PublishedAt
// is set exactly when the post is created with Published true, otherwise
// it stays nil.
type Post struct {
	ID          int64      `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Slug        string     `json:"slug" bson:"slug"`
	BodyMD      string     `json:"body_md" bson:"body_md"`
	CoverURL    string     `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	Published   bool       `json:"published" bson:"published"`
	PublishedAt *time.Time `json:"published_at" bson:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}

// GalleryItem is a photo shown on the gallery page.
type GalleryItem struct {
	ID        int64     `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	ImageURL  string    `json:"image_url" bson:"image_url"`
	Category  string    `json:"category,omitempty" bson:"category,omitempty"`
	Featured  bool      `json:"featured" bson:"featured"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
