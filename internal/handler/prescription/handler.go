package prescription

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carebase/hospital-portal/internal/flash"
	"github.com/carebase/hospital-portal/internal/model"
	"github.com/carebase/hospital-portal/internal/service/prescription"
	"github.com/carebase/hospital-portal/internal/session"
	"github.com/carebase/hospital-portal/internal/view"
)

type Handler struct {
	svc *prescription.Service
}

func NewHandler(svc *prescription.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the prescription routes onto an already-guarded group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/prescriptions", h.List)
	r.GET("/prescriptions/add", h.ShowAdd)
	r.POST("/prescriptions/add", h.Add)
}

func (h *Handler) List(c *gin.Context) {
	identity, err := session.FromContext(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	prescriptions, err := h.svc.ListForOwner(c.Request.Context(), identity.AccountID)
	if err != nil {
		c.Error(err)
		prescriptions = nil
	}

	c.HTML(http.StatusOK, "prescriptions.html", view.PrescriptionsPage{
		Page: view.Page{
			Title:    "Prescriptions",
			UserName: identity.Name,
			Flash:    flash.Take(c),
		},
		Prescriptions: prescriptions,
	})
}

func (h *Handler) ShowAdd(c *gin.Context) {
	identity, err := session.FromContext(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.HTML(http.StatusOK, "prescription_add.html", view.Page{
		Title:    "Add prescription",
		UserName: identity.Name,
		Flash:    flash.Take(c),
	})
}

func (h *Handler) Add(c *gin.Context) {
	identity, err := session.FromContext(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var form model.AddPrescriptionForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Set(c, flash.KindDanger, "Please fill required fields")
		c.Redirect(http.StatusSeeOther, "/prescriptions/add")
		return
	}

	if _, err := h.svc.Add(c.Request.Context(), identity.AccountID, &form); err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			flash.Set(c, flash.KindDanger, "Please fill required fields")
		case errors.Is(err, model.ErrDuplicateNumber):
			flash.Set(c, flash.KindDanger, "Prescription number already in use")
		default:
			c.Error(err)
			flash.Set(c, flash.KindDanger, "Could not save prescription. Please try again.")
		}
		c.Redirect(http.StatusSeeOther, "/prescriptions/add")
		return
	}

	flash.Set(c, flash.KindSuccess, "Prescription saved.")
	c.Redirect(http.StatusSeeOther, "/prescriptions")
}
