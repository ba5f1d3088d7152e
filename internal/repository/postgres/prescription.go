package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carebase/hospital-portal/internal/model"
	"github.com/carebase/hospital-portal/internal/repository"
)

type prescriptionRepository struct {
	db *sqlx.DB
}

func NewPrescriptionRepository(db *sqlx.DB) repository.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	query := `
		INSERT INTO prescriptions (
			id, prescription_number, patient_name, patient_email, doctor,
			medicines, notes, issued_at, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	prescription.ID = uuid.New()
	prescription.IssuedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		prescription.ID,
		prescription.PrescriptionNumber,
		prescription.PatientName,
		prescription.PatientEmail,
		prescription.Doctor,
		prescription.Medicines,
		prescription.Notes,
		prescription.IssuedAt,
		prescription.OwnerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateNumber
		}
		return fmt.Errorf("failed to create prescription: %w", err)
	}

	return nil
}

func (r *prescriptionRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Prescription, error) {
	query := `
		SELECT * FROM prescriptions
		WHERE owner_id = $1
		ORDER BY issued_at DESC
	`

	var prescriptions []*model.Prescription
	if err := r.db.SelectContext(ctx, &prescriptions, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}

	return prescriptions, nil
}
