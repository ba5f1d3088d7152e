package bill

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carebase/hospital-portal/internal/flash"
	"github.com/carebase/hospital-portal/internal/model"
	"github.com/carebase/hospital-portal/internal/service/bill"
	"github.com/carebase/hospital-portal/internal/session"
	"github.com/carebase/hospital-portal/internal/view"
)

type Handler struct {
	svc *bill.Service
}

func NewHandler(svc *bill.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the bill routes onto an already-guarded group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/bills", h.List)
	r.GET("/bills/add", h.ShowAdd)
	r.POST("/bills/add", h.Add)
}

func (h *Handler) List(c *gin.Context) {
	identity, err := session.FromContext(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	bills, err := h.svc.ListForOwner(c.Request.Context(), identity.AccountID)
	if err != nil {
		c.Error(err)
		bills = nil
	}

	c.HTML(http.StatusOK, "bills.html", view.BillsPage{
		Page: view.Page{
			Title:    "Bills",
			UserName: identity.Name,
			Flash:    flash.Take(c),
		},
		Bills: bills,
	})
}

func (h *Handler) ShowAdd(c *gin.Context) {
	identity, err := session.FromContext(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.HTML(http.StatusOK, "bill_add.html", view.Page{
		Title:    "Add bill",
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

	var form model.AddBillForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Set(c, flash.KindDanger, "Please fill required fields")
		c.Redirect(http.StatusSeeOther, "/bills/add")
		return
	}

	if _, err := h.svc.Add(c.Request.Context(), identity.AccountID, &form); err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			flash.Set(c, flash.KindDanger, "Please fill required fields")
		case errors.Is(err, model.ErrInvalidAmount):
			flash.Set(c, flash.KindDanger, "Invalid amount")
		case errors.Is(err, model.ErrDuplicateNumber):
			flash.Set(c, flash.KindDanger, "Bill number already in use")
		default:
			c.Error(err)
			flash.Set(c, flash.KindDanger, "Could not save bill. Please try again.")
		}
		c.Redirect(http.StatusSeeOther, "/bills/add")
		return
	}

	flash.Set(c, flash.KindSuccess, "Bill saved.")
	c.Redirect(http.StatusSeeOther, "/bills")
}
