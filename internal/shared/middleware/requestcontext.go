package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reviews-backend/internal/shared/requestctx"
)

// RequestContext assembles the explicit per-request context that services
// consume: the caller (from AuthMiddleware output, anonymous when it did
// not run) and the network origin. Services never reach back into the HTTP
// layer for these values.
func RequestContext(c *gin.Context) requestctx.Context {
	caller := requestctx.Anonymous()
	if v, exists := c.Get(CtxIdentityID); exists {
		if identityID, ok := v.(uuid.UUID); ok {
			caller = requestctx.Authenticated(identityID)
		}
	}

	return requestctx.Context{
		Caller:       caller,
		ForwardedFor: c.GetHeader("X-Forwarded-For"),
		RemoteAddr:   requestctx.StripPort(c.Request.RemoteAddr),
	}
}
