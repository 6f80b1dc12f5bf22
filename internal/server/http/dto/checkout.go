package dto

import "time"

// PaymentRequest carries the simplified payment form.
type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// OrderResponse confirms a submitted checkout.
type OrderResponse struct {
	Items    []CartItemResponse `json:"items"`
	Total    float64            `json:"total"`
	PlacedAt time.Time          `json:"placed_at"`
}
