// Package auth issues and verifies the signed session tokens returned to
// clients. A token binds a user id and a login id together with its kind
// (initial or refresh); expiry is embedded in the token and enforced here,
// not by the engine.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the "type" claim.
const (
	TokenTypeInitial = "INITIAL"
	TokenTypeRefresh = "REFRESH"
)

// Claims extends the standard claims with the session identity.
// The payload shape {userId, loginId, type} is what downstream
// verification expects; do not change it without the clients.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"userId"`
	LoginID   string `json:"loginId"`
	TokenType string `json:"type"`
}

// GenerateSessionToken signs a {userId, loginId, type} payload with HS256
// and the server secret, valid for validityDuration from now.
func GenerateSessionToken(userID, loginID, tokenType string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:    userID,
		LoginID:   loginID,
		TokenType: tokenType,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseSessionToken verifies the signature and expiry of tokenString and
// returns its claims. Any parse or validation failure is reported as
// common.ErrInvalidToken.
func ParseSessionToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
