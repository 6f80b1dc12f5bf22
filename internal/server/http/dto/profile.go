package dto

// UpdateProfileRequest carries the mutable profile fields.
type UpdateProfileRequest struct {
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// ChangePasswordRequest carries the password change form.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
