package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewAccessToken signs an HS256 JWT for a user. Claims carry the subject,
// role and full name so handlers can build the actor without a DB hit.
func NewAccessToken(secret string, userID uint, role, fullName string, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"sub":  float64(userID),
		"role": role,
		"name": fullName,
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
