package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload issued by the token-auth endpoint. The token
// is the only credential the API accepts; it carries enough to rebuild the
// caller (identity id) plus the staff flag for the admin routes.
type Claims struct {
	IdentityID string `json:"identity_id"`
	Username   string `json:"username"`
	IsStaff    bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// Manager handles JWT signing and validation.
type Manager struct {
	secret string
	ttl    time.Duration
}

// NewManager creates a JWT manager. ttl bounds how long issued tokens stay
// valid.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Generate issues a signed bearer token for the given identity.
func (m *Manager) Generate(identityID, username string, isStaff bool) (string, error) {
	claims := Claims{
		IdentityID: identityID,
		Username:   username,
		IsStaff:    isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Validate parses and verifies a token string.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
