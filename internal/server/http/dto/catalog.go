package dto

// ProductResponse represents a catalog product.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// CategoryResponse lists products under a display name derived from the slug.
type CategoryResponse struct {
	Category string            `json:"category"`
	Products []ProductResponse `json:"products"`
}
