package user

// CreateUserRequest represents the payload for provisioning a user
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=50"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin user"`
	Team  string `json:"team" binding:"omitempty,max=50"`
}

// UpdateUserRequest represents the payload for updating a user
type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=50"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin user"`
	Team  string `json:"team" binding:"omitempty,max=50"`
}

// UserResponse represents the user data returned in API responses
type UserResponse struct {
	ID           uint32 `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Team         string `json:"team,omitempty"`
	IsActive     bool   `json:"is_active"`
	LastLogin    string `json:"last_login,omitempty"`
	LastActivity string `json:"last_activity,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ListUsersResponse represents the response for listing users
type ListUsersResponse struct {
	Users []*UserResponse `json:"users"`
}

// CleanupResponse represents the result of an inactive-user sweep
type CleanupResponse struct {
	Deleted int `json:"deleted"`
}
