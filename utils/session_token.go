package utils

import (
	"errors"
	"time"

	"petalflow/config"

	"github.com/golang-jwt/jwt"
)

func sessionSecret() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "petalflow-dev"
	}
	return []byte(secret)
}

// GenerateResumeToken creates a signed token binding a wizard session to its
// vendor so a reloaded tab can re-attach without a guessable session id.
func GenerateResumeToken(sessionID, vendorSlug string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":    sessionID,
		"vendor": vendorSlug,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret())
}

// ParseResumeToken validates a resume token and returns the session id and
// vendor slug it was issued for.
func ParseResumeToken(tokenStr string) (sessionID, vendorSlug string, err error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sessionSecret(), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid resume token")
	}
	sessionID, _ = claims["sub"].(string)
	vendorSlug, _ = claims["vendor"].(string)
	if sessionID == "" {
		return "", "", errors.New("resume token missing session id")
	}
	return sessionID, vendorSlug, nil
}
