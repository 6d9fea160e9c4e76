package dto

// CreateUserRequest represents the signup request
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user. The password hash never appears here.
type UserResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Blogs    []string `json:"blogs"`
}
