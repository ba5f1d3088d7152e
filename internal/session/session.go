// Package session binds a verified account to subsequent requests via a
// signed, HttpOnly cookie. The cookie payload is a JWT carrying the account
// id and display name; nothing is stored server-side.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/carebase/hospital-portal/internal/model"
)

const CookieName = "hp_session"

var ErrNoSession = errors.New("no active session")

// Identity is the authenticated account bound to the current request.
type Identity struct {
	AccountID uuid.UUID
	Name      string
}

type Manager struct {
	secret []byte
	expiry time.Duration
}

func NewManager(secret string, expiry time.Duration) *Manager {
	return &Manager{secret: []byte(secret), expiry: expiry}
}

// Start binds the requesting client to the account for the session lifetime.
func (m *Manager) Start(c *gin.Context, account *model.Account) error {
	claims := jwt.MapClaims{
		"sub":  account.ID.String(),
		"name": account.Name,
		"exp":  time.Now().Add(m.expiry).Unix(),
		"iat":  time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	c.SetCookie(CookieName, token, int(m.expiry.Seconds()), "/", "", false, true)
	return nil
}

// Current returns the identity bound to the request, or ErrNoSession when the
// cookie is absent, expired, or tampered with.
func (m *Manager) Current(c *gin.Context) (*Identity, error) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil, ErrNoSession
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}

	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrNoSession
	}

	name, _ := claims["name"].(string)
	return &Identity{AccountID: accountID, Name: name}, nil
}

// End clears the session cookie; subsequent Current calls return ErrNoSession.
func (m *Manager) End(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// FromContext returns the identity injected by the auth middleware.
func FromContext(c *gin.Context) (*Identity, error) {
	v, ok := c.Get("identity")
	if !ok {
		return nil, ErrNoSession
	}
	identity, ok := v.(*Identity)
	if !ok {
		return nil, ErrNoSession
	}
	return identity, nil
}

// IntoContext stores the identity on the gin context for downstream handlers.
func IntoContext(c *gin.Context, identity *Identity) {
	c.Set("identity", identity)
}
