package model

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is an owner-scoped prescription record. Medicines is free text
// (comma or newline separated). IssuedAt is the insert time.
type Prescription struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	PrescriptionNumber string    `db:"prescription_number" json:"prescription_number"`
	PatientName        string    `db:"patient_name" json:"patient_name"`
	PatientEmail       string    `db:"patient_email" json:"patient_email"`
	Doctor             string    `db:"doctor" json:"doctor"`
	Medicines          string    `db:"medicines" json:"medicines"`
	Notes              string    `db:"notes" json:"notes,omitempty"`
	IssuedAt           time.Time `db:"issued_at" json:"issued_at"`
	OwnerID            uuid.UUID `db:"owner_id" json:"owner_id"`
}

// AddPrescriptionForm is the input schema for POST /prescriptions/add. Notes
// is optional; everything else is required.
type AddPrescriptionForm struct {
	PrescriptionNumber string `form:"prescription_number" validate:"required"`
	PatientName        string `form:"patient_name" validate:"required"`
	PatientEmail       string `form:"patient_email" validate:"required"`
	Doctor             string `form:"doctor" validate:"required"`
	Medicines          string `form:"medicines" validate:"required"`
	Notes              string `form:"notes"`
}
