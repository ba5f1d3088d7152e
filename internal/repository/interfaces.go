package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/carebase/hospital-portal/internal/model"
)

// All repository interfaces in one file
type (
	// AccountRepository is the identity directory: one row per registered
	// staff user, email unique across all accounts.
	AccountRepository interface {
		Create(ctx context.Context, account *model.Account) error
		GetByEmail(ctx context.Context, email string) (*model.Account, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Appointment, error)
	}

	BillRepository interface {
		Create(ctx context.Context, bill *model.Bill) error
		ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Bill, error)
	}

	PrescriptionRepository interface {
		Create(ctx context.Context, prescription *model.Prescription) error
		ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Prescription, error)
	}
)
