package bill

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/carebase/hospital-portal/internal/model"
	"github.com/carebase/hospital-portal/internal/repository"
)

type Service struct {
	repo     repository.BillRepository
	validate *validator.Validate
}

func NewService(repo repository.BillRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

// Add validates the form, parses the amount and persists the bill stamped
// with ownerID and the current time. A colliding bill number fails with
// ErrDuplicateNumber and writes nothing.
func (s *Service) Add(ctx context.Context, ownerID uuid.UUID, form *model.AddBillForm) (*model.Bill, error) {
	form.BillNumber = strings.TrimSpace(form.BillNumber)
	form.PatientName = strings.TrimSpace(form.PatientName)
	form.PatientEmail = strings.ToLower(strings.TrimSpace(form.PatientEmail))
	form.Amount = strings.TrimSpace(form.Amount)
	form.Description = strings.TrimSpace(form.Description)

	if err := s.validate.Struct(form); err != nil {
		return nil, model.ErrValidation
	}

	amount, err := strconv.ParseFloat(form.Amount, 64)
	if err != nil || amount < 0 {
		return nil, model.ErrInvalidAmount
	}

	bill := &model.Bill{
		BillNumber:   form.BillNumber,
		PatientName:  form.PatientName,
		PatientEmail: form.PatientEmail,
		Amount:       amount,
		Description:  form.Description,
		OwnerID:      ownerID,
	}

	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

// ListForOwner returns the owner's bills, newest issued first.
func (s *Service) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Bill, error) {
	return s.repo.ListForOwner(ctx, ownerID)
}
