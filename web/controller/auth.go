package controller

import (
	"net/http"

	"blog/logger"
	"blog/web/service"
	"blog/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm represents the registration request structure.
type RegisterForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Name     string `form:"name" binding:"required"`
}

// LoginForm represents the login request structure.
type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// AuthController handles registration, login and logout.
type AuthController struct {
	userService service.UserService
}

// NewAuthController creates a new AuthController and initializes its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

func (a *AuthController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", nil)
}

// register creates a new account and establishes its session. A duplicate
// email sends the caller to the login page with a notice instead.
func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		notice(c, "All fields are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user, err := a.userService.Register(form.Email, form.Password, form.Name)
	if err == service.ErrDuplicateEmail {
		notice(c, "You've already signed up with that email, log in instead!")
		c.Redirect(http.StatusFound, "/login")
		return
	} else if err != nil {
		logger.Error("register failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}
	logger.Infof("%s registered successfully", user.Email)
	c.Redirect(http.StatusFound, "/")
}

func (a *AuthController) loginPage(c *gin.Context) {
	html(c, "login.html", "Login", nil)
}

// login verifies the submitted credentials and establishes the session. The
// unknown-email and wrong-password notices share one style and one redirect
// so the flow shape reveals nothing about which check failed.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		notice(c, "All fields are required.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := a.userService.CheckUser(form.Email, form.Password)
	switch err {
	case nil:
	case service.ErrUnknownEmail:
		notice(c, "That email does not exist, please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	case service.ErrBadPassword:
		notice(c, "The password is incorrect, please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	default:
		logger.Error("login failed:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}
	logger.Infof("%s logged in successfully", user.Email)
	c.Redirect(http.StatusFound, "/")
}

// logout clears the session and returns to the home page.
func (a *AuthController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Email)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// notice stores a one-shot message, logging when the session cannot be saved.
func notice(c *gin.Context, msg string) {
	if err := session.SetNotice(c, msg); err != nil {
		logger.Warning("unable to save session notice:", err)
	}
}
