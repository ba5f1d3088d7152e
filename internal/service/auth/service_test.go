package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebase/hospital-portal/internal/model"
)

type fakeAccountRepo struct {
	byEmail map[string]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*model.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *model.Account) error {
	if _, ok := r.byEmail[account.Email]; ok {
		return model.ErrDuplicateEmail
	}
	stored := *account
	r.byEmail[account.Email] = &stored
	return nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*model.Account, error) {
	account, ok := r.byEmail[email]
	if !ok {
		return nil, model.ErrNotFound
	}
	return account, nil
}

func TestRegisterThenVerify(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo)

	account, err := svc.Register(context.Background(), &model.RegisterForm{
		Name:     "Alice Staff",
		Email:    "alice@hospital.test",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@hospital.test", account.Email)
	assert.NotEqual(t, "s3cret-pass", account.PasswordHash, "password must not be stored in recoverable form")

	verified, err := svc.Verify(context.Background(), "alice@hospital.test", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, account.Email, verified.Email)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), &model.RegisterForm{
		Name:     "Bob",
		Email:    "  Bob@Hospital.TEST ",
		Password: "pw123456",
	})
	require.NoError(t, err)

	_, ok := repo.byEmail["bob@hospital.test"]
	assert.True(t, ok, "email should be stored lower-cased and trimmed")

	// verify accepts any casing of the same address
	_, err = svc.Verify(context.Background(), "BOB@hospital.test", "pw123456")
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo)

	form := &model.RegisterForm{Name: "Alice", Email: "alice@hospital.test", Password: "pw123456"}
	_, err := svc.Register(context.Background(), form)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &model.RegisterForm{
		Name:     "Other Alice",
		Email:    "alice@hospital.test",
		Password: "different",
	})
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
	assert.Len(t, repo.byEmail, 1, "account count must be unchanged")
}

func TestRegisterMissingFields(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo)

	for name, form := range map[string]*model.RegisterForm{
		"blank name":     {Name: "  ", Email: "a@b.test", Password: "pw"},
		"blank email":    {Name: "A", Email: "", Password: "pw"},
		"blank password": {Name: "A", Email: "a@b.test", Password: ""},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), form)
			assert.ErrorIs(t, err, model.ErrValidation)
			assert.Empty(t, repo.byEmail)
		})
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), &model.RegisterForm{
		Name:     "Alice",
		Email:    "alice@hospital.test",
		Password: "correct-pw",
	})
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), "alice@hospital.test", "wrong-pw")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestVerifyUnknownEmail(t *testing.T) {
	svc := NewService(newFakeAccountRepo())

	_, err := svc.Verify(context.Background(), "nobody@hospital.test", "pw")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
