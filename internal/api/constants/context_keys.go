package constants

// Context keys for validated requests
const (
	// Auth context keys
	ContextKeyLogin = "login"

	// User context keys
	ContextKeyUserID    = "userID"
	ContextKeyUser      = "user"
	ContextKeyPrincipal = "principal"

	// Validation context keys
	ContextKeyValidate = "validate"
)
