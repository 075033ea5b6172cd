package handlers

import (
	"dashgate/internal/api/constants"
	"dashgate/internal/api/dto/common"
	"dashgate/internal/api/dto/v1/auth"
	"dashgate/internal/api/mapper"
	"dashgate/internal/api/middleware"
	"dashgate/internal/logging"
	"dashgate/internal/service"
	"dashgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exchanges identity-provider tokens for server-side sessions.
type AuthHandler struct {
	authService service.AuthService
	csrfService service.CSRFService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService, csrfService service.CSRFService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		csrfService: csrfService,
	}
}

// Login verifies a Firebase ID token and opens a session. A caller that
// already holds a valid session gets its current principal back instead of
// a second session.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := logging.GetGlobalLogger()

	// An authenticated caller re-entering the login route keeps its session.
	if token, err := c.Cookie(constants.CookieAuthToken); err == nil && token != "" {
		if principal, _, err := h.authService.Resolve(c.Request.Context(), token); err == nil {
			if service.EvaluateLoginRoute(principal) == service.DecisionRedirectHome {
				utils.HandleSuccess(c, auth.LoginResponse{User: *mapper.PrincipalToResponse(principal)})
				return
			}
		}
	}

	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeBadRequest, "Invalid login payload")
		return
	}

	principal, session, err := h.authService.Login(c.Request.Context(), req.Token, c.GetHeader("User-Agent"), utils.GetRealIP(c))
	if err != nil {
		utils.HandleAPIError(c, err, common.ErrCodeUnauthorized, "Login failed")
		return
	}

	logger.Info("User logged in: %s (scope %s:%s)", principal.Email, principal.ScopeKind, principal.Subject)

	h.setSessionCookie(c, session.Token)
	h.issueCSRFCookie(c)

	utils.HandleSuccess(c, auth.LoginResponse{User: *mapper.PrincipalToResponse(principal)})
}

// Session reports whether the caller holds a valid session and, if so,
// returns its principal.
func (h *AuthHandler) Session(c *gin.Context) {
	token, err := c.Cookie(constants.CookieAuthToken)
	if err != nil || token == "" {
		utils.HandleSuccess(c, auth.SessionResponse{Valid: false})
		return
	}

	principal, _, err := h.authService.Resolve(c.Request.Context(), token)
	if err != nil {
		utils.HandleSuccess(c, auth.SessionResponse{Valid: false})
		return
	}

	utils.HandleSuccess(c, auth.SessionResponse{
		Valid: true,
		User:  mapper.PrincipalToResponse(principal),
	})
}

// Profile returns the authenticated caller's principal.
func (h *AuthHandler) Profile(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.HandleAPIError(c, nil, common.ErrCodeUnauthorized, "Not authenticated")
		return
	}
	utils.HandleSuccess(c, mapper.PrincipalToResponse(principal))
}

// Logout invalidates the caller's session and clears its cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(constants.CookieAuthToken); err == nil && token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			logging.GetGlobalLogger().Warn("Failed to invalidate session on logout: %v", err)
		}
	}

	domain := utils.GetCookieDomain()
	c.SetCookie(constants.CookieAuthToken, "", -1, constants.CookiePathRoot, domain, true, true)
	c.SetCookie(constants.CookieCSRF, "", -1, constants.CookiePathRoot, domain, true, false)

	utils.HandleMessage(c, "Logged out successfully")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(
		constants.CookieAuthToken,
		token,
		constants.CookieDuration24h,
		constants.CookiePathRoot,
		utils.GetCookieDomain(),
		true, // secure
		true, // httpOnly
	)
}

// issueCSRFCookie hands the client a double-submit token. The cookie is
// intentionally readable by scripts so the SPA can echo it in a header.
func (h *AuthHandler) issueCSRFCookie(c *gin.Context) {
	token, err := h.csrfService.GenerateToken()
	if err != nil {
		logging.GetGlobalLogger().Warn("Failed to generate CSRF token: %v", err)
		return
	}
	c.SetCookie(
		constants.CookieCSRF,
		token,
		constants.CookieDuration24h,
		constants.CookiePathRoot,
		utils.GetCookieDomain(),
		true,  // secure
		false, // readable by the client
	)
}
