package auth

// LoginRequest represents the login request payload
type LoginRequest struct {
	Token string `json:"token" binding:"required"`
}

// PrincipalResponse represents the resolved identity returned after login
// and on session checks.
type PrincipalResponse struct {
	ID        uint32 `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	PhotoURL  string `json:"photo_url,omitempty"`
	Team      string `json:"team,omitempty"`
	Role      string `json:"role"`
	ScopeKind string `json:"scope_kind"`
	Subject   string `json:"subject"`
}

// LoginResponse represents the response after a successful login
type LoginResponse struct {
	User PrincipalResponse `json:"user"`
}

// SessionResponse represents the response for session validation
type SessionResponse struct {
	Valid bool               `json:"valid"`
	User  *PrincipalResponse `json:"user,omitempty"`
}
