package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shoplens/shoplens/internal/common"
	"github.com/shoplens/shoplens/internal/models"
)

// sessionClaims is the durable session artifact: the user snapshot wrapped
// in an HS256-signed token so a modified or hand-crafted record fails
// validation on restore. Lifetime is governed by the remember-me flag, not
// by an expiry claim.
type sessionClaims struct {
	jwt.RegisteredClaims
	User models.User `json:"user"`
}

func (m *Manager) signSession(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		User: user,
	})
	return token.SignedString(m.secret)
}

func (m *Manager) parseSession(tokenString string) (*models.User, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.User.Email == "" {
		return nil, common.ErrCorruptSessionState
	}
	return &claims.User, nil
}
