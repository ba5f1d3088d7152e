// Package view is the templating layer: it receives plain data structures
// from handlers and emits markup. Templates are embedded in the binary.
package view

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/carebase/hospital-portal/internal/flash"
	"github.com/carebase/hospital-portal/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded template set. Each page template is addressed
// by its file base name (e.g. "dashboard.html").
func Templates() (*template.Template, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}

// Page carries the fields common to every rendered page.
type Page struct {
	Title    string
	UserName string
	Flash    *flash.Notice
}

type DashboardPage struct {
	Page
	Appointments []*model.Appointment
}

type BillsPage struct {
	Page
	Bills []*model.Bill
}

type PrescriptionsPage struct {
	Page
	Prescriptions []*model.Prescription
}
