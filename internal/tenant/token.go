package tenant

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 24 * time.Hour

// Claims is the token payload. OwnerID is the tenant the token grants
// access to.
type Claims struct {
	OwnerID uint64 `json:"ownerId"`
	jwt.RegisteredClaims
}

// issueToken signs a new token for the tenant.
func (r *Registry) issueToken(tenant Tenant) (string, error) {
	now := time.Now()
	claims := &Claims{
		OwnerID: tenant.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   tenant.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(r.secret)
}

// VerifyToken parses and verifies a token and returns the owner ID it
// grants access to. Tokens of tenants that no longer exist are rejected.
func (r *Registry) VerifyToken(tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, ErrInvalidToken
	}

	if _, ok := r.Tenant(claims.OwnerID); !ok {
		return 0, ErrInvalidToken
	}

	return claims.OwnerID, nil
}
