package middleware

import (
	"net/http"

	"dashgate/internal/api/constants"
	"dashgate/internal/api/dto/common"
	"dashgate/internal/service"
	"dashgate/internal/utils"

	"github.com/gin-gonic/gin"
)

// CSRFMiddleware checks CSRF token for unsafe methods
func CSRFMiddleware(csrfService service.CSRFService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		csrfCookie, err := c.Cookie(constants.CookieCSRF)
		csrfHeader := c.GetHeader(constants.HeaderCSRF)
		if err != nil || !csrfService.ValidateToken(csrfCookie, csrfHeader) {
			utils.HandleAPIError(c, nil, common.ErrCodeForbidden, "CSRF token invalid or missing")
			c.Abort()
			return
		}
		c.Next()
	}
}
