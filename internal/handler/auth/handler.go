package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carebase/hospital-portal/internal/flash"
	"github.com/carebase/hospital-portal/internal/model"
	"github.com/carebase/hospital-portal/internal/service/auth"
	"github.com/carebase/hospital-portal/internal/session"
	"github.com/carebase/hospital-portal/internal/view"
)

type Handler struct {
	svc      *auth.Service
	sessions *session.Manager
}

func NewHandler(svc *auth.Service, sessions *session.Manager) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Index)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
}

// Index routes to the dashboard when a session exists, the login page
// otherwise.
func (h *Handler) Index(c *gin.Context) {
	if _, err := h.sessions.Current(c); err == nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", view.Page{
		Title: "Register",
		Flash: flash.Take(c),
	})
}

func (h *Handler) Register(c *gin.Context) {
	var form model.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Set(c, flash.KindDanger, "Please fill all fields")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	if _, err := h.svc.Register(c.Request.Context(), &form); err != nil {
		switch {
		case errors.Is(err, model.ErrDuplicateEmail):
			flash.Set(c, flash.KindWarning, "User already exists. Please login.")
			c.Redirect(http.StatusSeeOther, "/login")
		case errors.Is(err, model.ErrValidation):
			flash.Set(c, flash.KindDanger, "Please fill all fields")
			c.Redirect(http.StatusSeeOther, "/register")
		default:
			c.Error(err)
			flash.Set(c, flash.KindDanger, "Registration failed. Please try again.")
			c.Redirect(http.StatusSeeOther, "/register")
		}
		return
	}

	flash.Set(c, flash.KindSuccess, "Registered successfully. Login now.")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", view.Page{
		Title: "Login",
		Flash: flash.Take(c),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var form model.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Set(c, flash.KindDanger, "Invalid credentials")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	account, err := h.svc.Verify(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		flash.Set(c, flash.KindDanger, "Invalid credentials")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	if err := h.sessions.Start(c, account); err != nil {
		c.Error(err)
		flash.Set(c, flash.KindDanger, "Login failed. Please try again.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	flash.Set(c, flash.KindSuccess, fmt.Sprintf("Welcome, %s", account.Name))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	h.sessions.End(c)
	flash.Set(c, flash.KindInfo, "Logged out.")
	c.Redirect(http.StatusSeeOther, "/login")
}
