// Package controller provides the HTTP request handlers of the blog API:
// signup/login, post and comment CRUD, voting, and the admin endpoints.
package controller

import (
	"net/http"

	"techblog/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers, including authentication checks.
type BaseController struct{}

// checkLogin is a middleware that rejects unauthenticated requests. Handlers
// behind it can trust the session user identity without further checks.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "login required")
		c.Abort()
	} else {
		c.Next()
	}
}
