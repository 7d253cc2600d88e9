package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ser-kenya/ser-api/internal/core/domain"
	"github.com/ser-kenya/ser-api/internal/core/ports"
)

// stubContentService records the last create input per type and serves
// canned lists.
type stubContentService struct {
	products []domain.Product
	posts    []domain.Post

	lastProduct ports.CreateProductInput
	lastEvent   ports.CreateEventInput
	lastPost    ports.CreatePostInput
	lastGallery ports.CreateGalleryItemInput
}

func (s *stubContentService) ListProducts(context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubContentService) CreateProduct(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	s.lastProduct = in
	return &domain.Product{ID: 1, Name: in.Name, PriceKES: in.PriceKES, Featured: in.Featured, CreatedAt: time.Now()}, nil
}

func (s *stubContentService) ListEvents(context.Context) ([]domain.Event, error) {
	return nil, nil
}

func (s *stubContentService) CreateEvent(_ context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	s.lastEvent = in
	return &domain.Event{ID: 1, Title: in.Title, EventDate: in.EventDate, Location: in.Location}, nil
}

func (s *stubContentService) ListPosts(context.Context) ([]domain.Post, error) {
	return s.posts, nil
}

func (s *stubContentService) CreatePost(_ context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	s.lastPost = in
	return &domain.Post{ID: 1, Title: in.Title, Slug: "stub-slug", BodyMD: in.BodyMD}, nil
}

func (s *stubContentService) ListGalleryItems(context.Context) ([]domain.GalleryItem, error) {
	return nil, nil
}

func (s *stubContentService) CreateGalleryItem(_ context.Context, in ports.CreateGalleryItemInput) (*domain.GalleryItem, error) {
	s.lastGallery = in
	return &domain.GalleryItem{ID: 1, Title: in.Title, ImageURL: in.ImageURL}, nil
}

func TestContentHandler_CreateProduct_Created(t *testing.T) {
	svc := &stubContentService{}
	h := NewContentHandler(svc)

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"name":"Scarf","price_kes":450,"featured":true}`), rec)

	if err := h.CreateProduct(c); err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastProduct.PriceKES != 450 || !svc.lastProduct.Featured {
		t.Fatalf("input not forwarded: %+v", svc.lastProduct)
	}
}

func TestContentHandler_CreateProduct_MissingPrice(t *testing.T) {
	svc := &stubContentService{}
	h := NewContentHandler(svc)

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"name":"Scarf"}`), rec)

	err := h.CreateProduct(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
	msg, _ := he.Message.(string)
	if !strings.Contains(msg, "price_kes is required") {
		t.Fatalf("expected price_kes in message, got %q", msg)
	}
	if svc.lastProduct.Name != "" {
		t.Fatalf("service must not be called on validation failure")
	}
}

// A zero price is valid: required rejects a missing field, not a zero value.
func TestContentHandler_CreateProduct_ZeroPrice(t *testing.T) {
	svc := &stubContentService{}
	h := NewContentHandler(svc)

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"name":"Sticker","price_kes":0}`), rec)

	if err := h.CreateProduct(c); err != nil {
		t.Fatalf("zero price must be accepted: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestContentHandler_CreateProduct_NegativePrice(t *testing.T) {
	h := NewContentHandler(&stubContentService{})

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"name":"Scarf","price_kes":-5}`), rec)

	err := h.CreateProduct(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestContentHandler_CreateEvent_RequiresFields(t *testing.T) {
	h := NewContentHandler(&stubContentService{})

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"title":"Open Day"}`), rec)

	err := h.CreateEvent(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	msg, _ := he.Message.(string)
	if !strings.Contains(msg, "event_date is required") || !strings.Contains(msg, "location is required") {
		t.Fatalf("expected both missing fields named, got %q", msg)
	}
}

func TestContentHandler_CreateEvent_RejectsBadDate(t *testing.T) {
	h := NewContentHandler(&stubContentService{})

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"title":"Open Day","event_date":"May 1st","location":"Nairobi"}`), rec)

	err := h.CreateEvent(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
}

func TestContentHandler_CreatePost_ForwardsPublishedPointer(t *testing.T) {
	svc := &stubContentService{}
	h := NewContentHandler(svc)

	e := newTestEcho()

	// omitted → nil pointer, service applies the default
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"title":"Hello","body_md":"# hi"}`), rec)
	if err := h.CreatePost(c); err != nil {
		t.Fatalf("CreatePost returned error: %v", err)
	}
	if svc.lastPost.Published != nil {
		t.Fatalf("omitted published must forward nil, got %v", *svc.lastPost.Published)
	}

	// explicit false survives the trip
	rec = httptest.NewRecorder()
	c = e.NewContext(jsonRequest(http.MethodPost, `{"title":"Draft","body_md":"x","published":false}`), rec)
	if err := h.CreatePost(c); err != nil {
		t.Fatalf("CreatePost returned error: %v", err)
	}
	if svc.lastPost.Published == nil || *svc.lastPost.Published {
		t.Fatalf("explicit false lost in transit: %v", svc.lastPost.Published)
	}
}

func TestContentHandler_CreateGalleryItem_RequiresImageURL(t *testing.T) {
	h := NewContentHandler(&stubContentService{})

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, `{"title":"Sunset"}`), rec)

	err := h.CreateGalleryItem(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	msg, _ := he.Message.(string)
	if !strings.Contains(msg, "image_url is required") {
		t.Fatalf("expected image_url named, got %q", msg)
	}
}

func TestContentHandler_ListPosts_Public(t *testing.T) {
	now := time.Now()
	svc := &stubContentService{posts: []domain.Post{
		{ID: 2, Title: "Newer", Slug: "newer", Published: true, PublishedAt: &now},
		{ID: 1, Title: "Older", Slug: "older", Published: true, PublishedAt: &now},
	}}
	h := NewContentHandler(svc)

	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := h.ListPosts(c); err != nil {
		t.Fatalf("ListPosts returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var posts []domain.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(posts) != 2 || posts[0].Slug != "newer" {
		t.Fatalf("unexpected payload: %+v", posts)
	}
}
