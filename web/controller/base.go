// Package controller provides the HTTP request handlers for the blog's
// server-rendered pages.
package controller

import (
	"net/http"

	"blog/config"
	"blog/web/session"

	"github.com/gin-gonic/gin"
)

// html renders an HTML template with the provided data and title, adding the
// caller identity and any pending notices.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title

	user := session.GetLoginUser(c)
	data["logged_in"] = user.IsAuthenticated()
	data["current_user"] = user
	data["notices"] = session.TakeNotice(c)

	c.HTML(http.StatusOK, name, getContext(data))
}

// getContext adds version context to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}
