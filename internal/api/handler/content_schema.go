package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// The validate tags below are the declarative per-resource schema: one
// request struct per content type carrying its required-field set, all
// consumed by the same bind-and-validate path in the handler.

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	PriceKES    *float64 `json:"price_kes"   validate:"required,gte=0"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Featured    bool     `json:"featured"`
}

type createEventRequest struct {
	Title       string `json:"title"       validate:"required"`
	EventDate   string `json:"event_date"  validate:"required,datetime=2006-01-02"`
	Location    string `json:"location"    validate:"required"`
	Description string `json:"description"`
}

type createPostRequest struct {
	Title    string `json:"title"   validate:"required"`
	Slug     string `json:"slug"`
	BodyMD   string `json:"body_md" validate:"required"`
	CoverURL string `json:"cover_url"`
	// nil means the field was omitted; the service defaults it to true.
	Published *bool `json:"published"`
}

type createGalleryItemRequest struct {
	Title    string `json:"title"     validate:"required"`
	ImageURL string `json:"image_url" validate:"required"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}
