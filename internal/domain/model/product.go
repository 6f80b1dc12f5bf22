package model

import "time"

// Product is a catalog entry. Read-only from the storefront's perspective.
type Product struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	ImageURL    string
	CreatedAt   time.Time
}
