package controller

import (
	"net/http"

	"techblog/config"
	"techblog/logger"
	"techblog/web/service"
	"techblog/web/session"

	"github.com/gin-gonic/gin"
)

// SignUpForm represents the signup request structure.
type SignUpForm struct {
	Username string `json:"username" form:"username" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// PasswordForm represents the password change request structure.
type PasswordForm struct {
	Password string `json:"password" form:"password" binding:"required"`
}

// UserController handles signup, login, logout, and password changes.
type UserController struct {
	BaseController

	userService service.UserService
}

// NewUserController creates a new UserController and initializes its routes.
func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/users")

	g.POST("", a.signUp)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
	g.PUT("/password", a.checkLogin, a.updatePassword)
}

// signUp creates a user and logs them in.
func (a *UserController) signUp(c *gin.Context) {
	var form SignUpForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}

	user, err := a.userService.SignUp(form.Username, form.Email, form.Password)
	if err != nil {
		jsonErr(c, "sign up", err)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}
	jsonObj(c, user)
}

// login authenticates a user and creates the session.
func (a *UserController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}

	user := a.userService.CheckUser(form.Email, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q, IP: %q", form.Email, getRemoteIp(c))
		pureJsonMsg(c, http.StatusUnauthorized, false, "wrong email or password")
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}
	logger.Infof("%s logged in, IP: %s", user.Username, getRemoteIp(c))
	jsonObj(c, user)
}

// logout clears the session.
func (a *UserController) logout(c *gin.Context) {
	if id := session.GetLoginUserId(c); id > 0 {
		if user, err := a.userService.GetUser(id); err == nil {
			logger.Infof("%s logged out", user.Username)
		}
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	jsonMsg(c, "logged out")
}

// updatePassword rehashes and stores the new password for the session user.
func (a *UserController) updatePassword(c *gin.Context) {
	var form PasswordForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}

	userId := session.GetLoginUserId(c)
	if err := a.userService.UpdatePassword(userId, form.Password); err != nil {
		jsonErr(c, "update password", err)
		return
	}
	jsonMsg(c, "password updated")
}
