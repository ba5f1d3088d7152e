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

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, patient_name, patient_email, doctor, appointment_at,
			reason, created_at, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.PatientName,
		appointment.PatientEmail,
		appointment.Doctor,
		appointment.AppointmentAt,
		appointment.Reason,
		appointment.CreatedAt,
		appointment.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

func (r *appointmentRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT * FROM appointments
		WHERE owner_id = $1
		ORDER BY appointment_at
	`

	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return appointments, nil
}
