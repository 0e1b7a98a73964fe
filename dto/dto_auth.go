package dto

type SignUpRequest struct {
	FullName string `json:"fullName" validate:"required" example:"John Doe"`
	Email    string `json:"email"    validate:"required,email" example:"john@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"password123"`
}

type SignInRequest struct {
	Email    string `json:"email"    example:"john@example.com"`
	Password string `json:"password" example:"password123"`
}

type SignInResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
