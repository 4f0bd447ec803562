package auth

// LoginRequest accepts either credential shape: email for administrators,
// username for data officers. Exactly one of the two must be set.
type LoginRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
