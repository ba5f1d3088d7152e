package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carebase/hospital-portal/internal/model"
	"github.com/carebase/hospital-portal/internal/repository"
)

// Accepted input layouts for the appointment date field. Seconds are
// optional; anything else is rejected.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type Service struct {
	repo     repository.AppointmentRepository
	validate *validator.Validate
}

func NewService(repo repository.AppointmentRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

// Book validates the form, parses the appointment date and persists the
// booking stamped with ownerID. The supplied timestamp is stored verbatim.
func (s *Service) Book(ctx context.Context, ownerID uuid.UUID, form *model.BookAppointmentForm) (*model.Appointment, error) {
	form.PatientName = strings.TrimSpace(form.PatientName)
	form.PatientEmail = strings.ToLower(strings.TrimSpace(form.PatientEmail))
	form.Doctor = strings.TrimSpace(form.Doctor)
	form.Date = strings.TrimSpace(form.Date)
	form.Reason = strings.TrimSpace(form.Reason)

	if err := s.validate.Struct(form); err != nil {
		return nil, model.ErrValidation
	}

	when, err := ParseDate(form.Date)
	if err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		PatientName:   form.PatientName,
		PatientEmail:  form.PatientEmail,
		Doctor:        form.Doctor,
		AppointmentAt: when,
		Reason:        form.Reason,
		OwnerID:       ownerID,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// ListForOwner returns the owner's appointments ascending by appointment
// time, recomputed fresh on every call.
func (s *Service) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Appointment, error) {
	return s.repo.ListForOwner(ctx, ownerID)
}

// ParseDate accepts a combined date-time form (YYYY-MM-DDTHH:MM, with an
// optional space separator and optional seconds) or a bare date.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, model.ErrInvalidDate
}
