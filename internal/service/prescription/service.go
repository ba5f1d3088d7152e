package prescription

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carebase/hospital-portal/internal/model"
	"github.com/carebase/hospital-portal/internal/repository"
)

type Service struct {
	repo     repository.PrescriptionRepository
	validate *validator.Validate
}

func NewService(repo repository.PrescriptionRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

// Add validates the form and persists the prescription stamped with ownerID
// and the current time. A colliding prescription number fails with
// ErrDuplicateNumber and writes nothing.
func (s *Service) Add(ctx context.Context, ownerID uuid.UUID, form *model.AddPrescriptionForm) (*model.Prescription, error) {
	form.PrescriptionNumber = strings.TrimSpace(form.PrescriptionNumber)
	form.PatientName = strings.TrimSpace(form.PatientName)
	form.PatientEmail = strings.ToLower(strings.TrimSpace(form.PatientEmail))
	form.Doctor = strings.TrimSpace(form.Doctor)
	form.Medicines = strings.TrimSpace(form.Medicines)
	form.Notes = strings.TrimSpace(form.Notes)

	if err := s.validate.Struct(form); err != nil {
		return nil, model.ErrValidation
	}

	prescription := &model.Prescription{
		PrescriptionNumber: form.PrescriptionNumber,
		PatientName:        form.PatientName,
		PatientEmail:       form.PatientEmail,
		Doctor:             form.Doctor,
		Medicines:          form.Medicines,
		Notes:              form.Notes,
		OwnerID:            ownerID,
	}

	if err := s.repo.Create(ctx, prescription); err != nil {
		return nil, err
	}

	return prescription, nil
}

// ListForOwner returns the owner's prescriptions, newest issued first.
func (s *Service) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Prescription, error) {
	return s.repo.ListForOwner(ctx, ownerID)
}
