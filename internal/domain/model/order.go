package model

import "time"

// Payment carries the simplified checkout payment fields.
type Payment struct {
	CardNumber string
	Expiry     string
	CVV        string
}

// OrderConfirmation summarizes a completed checkout: the purchased lines
// and the total charged at submission time.
type OrderConfirmation struct {
	Items    []CartItem
	Total    float64
	PlacedAt time.Time
}
