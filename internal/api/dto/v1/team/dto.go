package team

// CreateTeamRequest represents the payload for creating a team
type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// UpdateTeamRequest represents the payload for updating a team
type UpdateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// TeamResponse represents the team data returned in API responses
type TeamResponse struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
