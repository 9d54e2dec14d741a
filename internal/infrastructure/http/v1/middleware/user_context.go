package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	appctx "salesdesk/internal/core/context"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
)

// UserContext puts the acting user named by the X-User-ID header on the request
// context. Requests without the header act as the system actor.
func UserContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := strings.TrimSpace(c.GetHeader(HeaderUserID)); uid != "" {
			ctx := appctx.WithUser(c.Request.Context(), &appctx.UserContext{
				UserID: uid,
				Name:   strings.TrimSpace(c.GetHeader(HeaderUserName)),
			})
			c.Request = c.Request.WithContext(ctx)
			c.Set("user_id", uid)
		}
		c.Next()
	}
}
