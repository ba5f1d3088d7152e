package model

import "errors"

// Sentinel errors surfaced by services and repositories. Handlers resolve
// every one of them into a flash notice plus a redirect; none escape the
// request boundary.
var (
	ErrValidation         = errors.New("missing required field")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateNumber    = errors.New("number already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date format")
	ErrNotFound           = errors.New("not found")
)
