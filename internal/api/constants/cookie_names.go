package constants

// Cookie names used in the application
const (
	// Authentication cookies
	CookieAuthToken = "auth_token" // API session token (HttpOnly)

	// CSRF protection
	CookieCSRF = "csrf_token"
	HeaderCSRF = "X-CSRF-Token"

	// Cookie paths
	CookiePathRoot = "/" // Root path for cookies available throughout the site

	// Cookie duration in seconds
	CookieDuration24h = 86400 // 24 hours
)
