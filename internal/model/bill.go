package model

import (
	"time"

	"github.com/google/uuid"
)

// Bill is an owner-scoped billing record. IssuedAt is the insert time, not a
// user-supplied value.
type Bill struct {
	ID           uuid.UUID `db:"id" json:"id"`
	BillNumber   string    `db:"bill_number" json:"bill_number"`
	PatientName  string    `db:"patient_name" json:"patient_name"`
	PatientEmail string    `db:"patient_email" json:"patient_email"`
	Amount       float64   `db:"amount" json:"amount"`
	IssuedAt     time.Time `db:"issued_at" json:"issued_at"`
	Description  string    `db:"description" json:"description,omitempty"`
	OwnerID      uuid.UUID `db:"owner_id" json:"owner_id"`
}

// AddBillForm is the input schema for POST /bills/add. Amount stays a string
// until the service parses it.
type AddBillForm struct {
	BillNumber   string `form:"bill_number" validate:"required"`
	PatientName  string `form:"patient_name" validate:"required"`
	PatientEmail string `form:"patient_email" validate:"required"`
	Amount       string `form:"amount" validate:"required"`
	Description  string `form:"description"`
}
