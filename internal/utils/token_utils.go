package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims issued by this service. The staff flag gates the
// admin loan endpoints.
type Claims struct {
	IsStaff bool `json:"is_staff"`
	jwt.RegisteredClaims
}

// GenerateJWT generates a new signed access token for the given user.
func GenerateJWT(userID string, isStaff bool, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := Claims{
		IsStaff: isStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and
// standard claims. It returns the claims if the token is valid.
func ParseAndValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
