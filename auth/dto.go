package auth

// SignUpRequest represents the sign-up request payload.
type SignUpRequest struct {
	FirstName string `json:"first_name" example:"John" validate:"required,max=100"`
	LastName  string `json:"last_name" example:"Doe" validate:"required,max=100"`
	Email     string `json:"email" example:"user@example.com" validate:"required,email"`
	Password  string `json:"password" example:"strongpassword123" validate:"required,min=8"`
}

// SignInRequest represents the sign-in request payload.
type SignInRequest struct {
	Email    string `json:"email" example:"user@example.com" validate:"required,email"`
	Password string `json:"password" example:"strongpassword123" validate:"required"`
}

// UserResponse carries a user's public profile fields.
type UserResponse struct {
	ID        int    `json:"id" example:"1"`
	FirstName string `json:"first_name" example:"John"`
	LastName  string `json:"last_name" example:"Doe"`
	Email     string `json:"email" example:"user@example.com"`
}

// AuthResponse is returned on successful sign-up or sign-in.
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
