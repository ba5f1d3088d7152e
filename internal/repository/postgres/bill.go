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

type billRepository struct {
	db *sqlx.DB
}

func NewBillRepository(db *sqlx.DB) repository.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *model.Bill) error {
	query := `
		INSERT INTO bills (
			id, bill_number, patient_name, patient_email, amount,
			issued_at, description, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	bill.ID = uuid.New()
	bill.IssuedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		bill.ID,
		bill.BillNumber,
		bill.PatientName,
		bill.PatientEmail,
		bill.Amount,
		bill.IssuedAt,
		bill.Description,
		bill.OwnerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateNumber
		}
		return fmt.Errorf("failed to create bill: %w", err)
	}

	return nil
}

func (r *billRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Bill, error) {
	query := `
		SELECT * FROM bills
		WHERE owner_id = $1
		ORDER BY issued_at DESC
	`

	var bills []*model.Bill
	if err := r.db.SelectContext(ctx, &bills, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	return bills, nil
}
