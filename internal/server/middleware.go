package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-ledger/utils"
)

// IdentityHeader carries the verified user id supplied by the upstream
// identity provider. The ledger trusts it and performs no credential
// checks of its own.
const IdentityHeader = "X-User-ID"

var errMissingIdentity = errors.New("missing verified identity")

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware extracts the caller identity from IdentityHeader
// and stores it on the request context. Requests without one are
// rejected with 401.
func IdentityMiddleware(c *gin.Context) {
	userID := c.GetHeader(IdentityHeader)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, errMissingIdentity, "authentication required")
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}
