// Package middleware provides the request gates and instrumentation the blog
// applies before its handlers.
package middleware

import (
	"net/http"

	"blog/logger"
	"blog/web/session"

	"github.com/gin-gonic/gin"
)

// RequireLogin redirects anonymous callers to the login page with a notice.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			if err := session.SetNotice(c, "You need to login or register to comment."); err != nil {
				logger.Warning("unable to save session notice:", err)
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the caller is the administrator. The
// gate runs before any handler, so a rejected request causes no mutation.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if !user.IsAuthenticated() || !user.IsAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
