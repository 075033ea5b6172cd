package dashboard

// CreateDashboardRequest represents the payload for registering a dashboard
type CreateDashboardRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
	URL         string `json:"url" binding:"required,url"`
	Thumbnail   string `json:"thumbnail" binding:"omitempty,url"`
}

// UpdateDashboardRequest represents the payload for updating a dashboard
type UpdateDashboardRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
	URL         string `json:"url" binding:"required,url"`
	Thumbnail   string `json:"thumbnail" binding:"omitempty,url"`
}

// GrantRequest represents the payload for granting access to a dashboard
type GrantRequest struct {
	SubjectKind string `json:"subject_kind" binding:"required,oneof=team email"`
	Subject     string `json:"subject" binding:"required"`
}

// GrantResponse represents one access grant on a dashboard
type GrantResponse struct {
	ID          uint32 `json:"id"`
	SubjectKind string `json:"subject_kind"`
	Subject     string `json:"subject"`
	CreatedAt   string `json:"created_at"`
}

// DashboardResponse represents the dashboard data returned in API responses
type DashboardResponse struct {
	ID          uint32           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	URL         string           `json:"url"`
	Thumbnail   string           `json:"thumbnail,omitempty"`
	Grants      []*GrantResponse `json:"grants,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// CandidatesResponse lists the subjects not yet granted on a dashboard
type CandidatesResponse struct {
	Teams  []string `json:"teams"`
	Emails []string `json:"emails"`
}
