package dto

// RegisterRequest describes the registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse represents the authenticated user's public profile.
type UserResponse struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
}
