package model

import "time"

// User represents a registered customer of the storefront.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Address      string
	Phone        string
	ProfilePic   string
	CreatedAt    time.Time
}
