package dto

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Age      *int   `json:"age"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries a refresh token for rotation or logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPairResponse is a rotated token pair.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest is the partial profile update payload.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name"`
	Age       *int    `json:"age"`
	AvatarURL *string `json:"avatar_url"`
}
