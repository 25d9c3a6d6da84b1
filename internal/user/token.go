package user

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mcastellanos/storefront/internal/apperr"
)

type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the session tokens handed to clients.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) Issue(u *User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.New(apperr.Unauthorized, "unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, apperr.New(apperr.Unauthorized, "invalid or expired token")
	}
	return &claims, nil
}
