package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"disease-predictor-gateway/internal/models"
)

// SessionClaims is the signed form of a persisted session. The token has no
// expiry: the session lives until the user logs out.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// SignSessionToken serializes a session as a signed HS256 token so a
// tampered or hand-edited session file reads back as absent.
func SignSessionToken(session *models.Session, secretKey string) (string, error) {
	claims := &SessionClaims{
		UserID: session.ID,
		Name:   session.Name,
		Email:  session.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Subject:  session.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// ParseSessionToken validates a session token and reconstructs the session.
func ParseSessionToken(tokenString string, secretKey string) (*models.Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return &models.Session{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
	}, nil
}
