package appointment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carebase/hospital-portal/internal/flash"
	"github.com/carebase/hospital-portal/internal/model"
	"github.com/carebase/hospital-portal/internal/service/appointment"
	"github.com/carebase/hospital-portal/internal/session"
	"github.com/carebase/hospital-portal/internal/view"
)

type Handler struct {
	svc *appointment.Service
}

func NewHandler(svc *appointment.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the appointment routes onto an already-guarded group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Dashboard)
	r.GET("/book", h.ShowBook)
	r.POST("/book", h.Book)
}

func (h *Handler) Dashboard(c *gin.Context) {
	identity, err := session.FromContext(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	appointments, err := h.svc.ListForOwner(c.Request.Context(), identity.AccountID)
	if err != nil {
		c.Error(err)
		appointments = nil
	}

	c.HTML(http.StatusOK, "dashboard.html", view.DashboardPage{
		Page: view.Page{
			Title:    "Dashboard",
			UserName: identity.Name,
			Flash:    flash.Take(c),
		},
		Appointments: appointments,
	})
}

func (h *Handler) ShowBook(c *gin.Context) {
	identity, err := session.FromContext(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.HTML(http.StatusOK, "book.html", view.Page{
		Title:    "Book appointment",
		UserName: identity.Name,
		Flash:    flash.Take(c),
	})
}

func (h *Handler) Book(c *gin.Context) {
	identity, err := session.FromContext(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var form model.BookAppointmentForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Set(c, flash.KindDanger, "Please fill required fields")
		c.Redirect(http.StatusSeeOther, "/book")
		return
	}

	if _, err := h.svc.Book(c.Request.Context(), identity.AccountID, &form); err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			flash.Set(c, flash.KindDanger, "Please fill required fields")
		case errors.Is(err, model.ErrInvalidDate):
			flash.Set(c, flash.KindDanger, "Invalid date format. Use YYYY-MM-DD or YYYY-MM-DDTHH:MM")
		default:
			c.Error(err)
			flash.Set(c, flash.KindDanger, "Could not book appointment. Please try again.")
		}
		c.Redirect(http.StatusSeeOther, "/book")
		return
	}

	flash.Set(c, flash.KindSuccess, "Appointment booked!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
