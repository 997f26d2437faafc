// Package token issues and verifies the signed bearer tokens that carry
// identity through requests.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the verified identity a token carries.
type Claims struct {
	ID   uuid.UUID
	Role string
}

// Issuer signs and validates HS256 tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, expiry time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue returns a signed token embedding {id, role} with the configured
// expiry.
func (i *Issuer) Issue(userID uuid.UUID, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID.String(),
		"role": role,
		"iat":  i.now().Unix(),
		"exp":  i.now().Add(i.expiry).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify validates the signature and expiry and returns the embedded claims.
// Every failure mode collapses to ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	rawID, _ := mapClaims["id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	role, _ := mapClaims["role"].(string)
	if role == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{ID: userID, Role: role}, nil
}
