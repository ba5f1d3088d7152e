package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is an owner-scoped booking. AppointmentAt is stored exactly as
// the user supplied it; CreatedAt is the insert time.
type Appointment struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientName   string    `db:"patient_name" json:"patient_name"`
	PatientEmail  string    `db:"patient_email" json:"patient_email"`
	Doctor        string    `db:"doctor" json:"doctor"`
	AppointmentAt time.Time `db:"appointment_at" json:"appointment_at"`
	Reason        string    `db:"reason" json:"reason,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	OwnerID       uuid.UUID `db:"owner_id" json:"owner_id"`
}

// BookAppointmentForm is the input schema for POST /book. Date stays a string
// until the service parses it; reason is optional.
type BookAppointmentForm struct {
	PatientName  string `form:"patient_name" validate:"required"`
	PatientEmail string `form:"patient_email" validate:"required"`
	Doctor       string `form:"doctor" validate:"required"`
	Date         string `form:"appointment_date" validate:"required"`
	Reason       string `form:"reason"`
}
