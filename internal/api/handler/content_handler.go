package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ser-kenya/ser-api/internal/api/metrics"
	"github.com/ser-kenya/ser-api/internal/core/ports"
)

// ContentHandler serves the four content resources. Lists are public;
// creation sits behind the Auth + RBAC(admin) middleware chain.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// bindAndValidate decodes the request body into T and runs the declarative
// schema. Both failure modes are 400s: malformed JSON yields a generic
// message, a schema violation names the offending field(s). Validation
// always completes before any service or store call.
func bindAndValidate[T any](c echo.Context) (T, error) {
	var req T
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// ListProducts handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ContentHandler) ListProducts(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /products [post]
func (h *ContentHandler) CreateProduct(c echo.Context) error {
	req, err := bindAndValidate[createProductRequest](c)
	if err != nil {
		return err
	}

	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		PriceKES:    *req.PriceKES,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Featured:    req.Featured,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("product").Inc()
	return c.JSON(http.StatusCreated, product)
}

// ListEvents handles GET /api/events.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {array}  domain.Event
// @Router       /events [get]
func (h *ContentHandler) ListEvents(c echo.Context) error {
	events, err := h.service.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /api/events.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /events [post]
func (h *ContentHandler) CreateEvent(c echo.Context) error {
	req, err := bindAndValidate[createEventRequest](c)
	if err != nil {
		return err
	}

	event, err := h.service.CreateEvent(c.Request().Context(), ports.CreateEventInput{
		Title:       req.Title,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("event").Inc()
	return c.JSON(http.StatusCreated, event)
}

// ListPosts handles GET /api/posts. Only published posts are returned.
//
// @Summary      List published posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  domain.Post
// @Router       /posts [get]
func (h *ContentHandler) ListPosts(c echo.Context) error {
	posts, err := h.service.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// CreatePost handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /posts [post]
func (h *ContentHandler) CreatePost(c echo.Context) error {
	req, err := bindAndValidate[createPostRequest](c)
	if err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		Title:     req.Title,
		Slug:      req.Slug,
		BodyMD:    req.BodyMD,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("post").Inc()
	return c.JSON(http.StatusCreated, post)
}

// ListGallery handles GET /api/gallery.
//
// @Summary      List gallery items
// @Tags         gallery
// @Produce      json
// @Success      200  {array}  domain.GalleryItem
// @Router       /gallery [get]
func (h *ContentHandler) ListGallery(c echo.Context) error {
	items, err := h.service.ListGalleryItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateGalleryItem handles POST /api/gallery.
//
// @Summary      Create a gallery item
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGalleryItemRequest  true  "Gallery item details"
// @Success      201   {object}  domain.GalleryItem
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /gallery [post]
func (h *ContentHandler) CreateGalleryItem(c echo.Context) error {
	req, err := bindAndValidate[createGalleryItemRequest](c)
	if err != nil {
		return err
	}

	item, err := h.service.CreateGalleryItem(c.Request().Context(), ports.CreateGalleryItemInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Category: req.Category,
		Featured: req.Featured,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues("gallery_item").Inc()
	return c.JSON(http.StatusCreated, item)
}
