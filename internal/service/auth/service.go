package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/carebase/hospital-portal/internal/model"
	"github.com/carebase/hospital-portal/internal/repository"
)

const bcryptCost = 12

// Service is the credential store: it hashes and verifies passwords and owns
// account creation. Plaintext passwords never leave this package.
type Service struct {
	accounts repository.AccountRepository
	validate *validator.Validate
}

func NewService(accounts repository.AccountRepository) *Service {
	return &Service{
		accounts: accounts,
		validate: validator.New(),
	}
}

// Register creates a new account with a salted one-way hash of the password.
// A second registration with the same email fails with ErrDuplicateEmail and
// writes nothing.
func (s *Service) Register(ctx context.Context, form *model.RegisterForm) (*model.Account, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = NormalizeEmail(form.Email)

	if err := s.validate.Struct(form); err != nil {
		return nil, model.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &model.Account{
		Email:        form.Email,
		Name:         form.Name,
		PasswordHash: string(hash),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Verify looks up the account by normalized email and checks the password
// against the stored hash. Absent account and hash mismatch are
// indistinguishable to the caller.
func (s *Service) Verify(ctx context.Context, email, password string) (*model.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return account, nil
}

// NormalizeEmail lower-cases and trims an email address so lookups and the
// uniqueness constraint agree on a canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
