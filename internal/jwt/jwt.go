package jwt

import (
	"errors"
	"fmt"
	"time"

	"agurk-server/internal/config"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Issuer issues the JWT
const Issuer = "agurk-server"

// Audience is the intended JWT audience
const Audience = "agurk"

var signingKey []byte

// LoadKeys will load the signing secret from the configuration
// this method should only be called once.
func LoadKeys() {
	SetSecret(config.Instance().Security.JWTSignSecret)
}

// SetSecret sets the HMAC secret used to sign and validate tokens
func SetSecret(secret string) {
	signingKey = []byte(secret)
}

// Sign will sign a JWT for the subject that expires after ttl
func Sign(subject string, ttl time.Duration) (string, error) {
	if len(signingKey) == 0 {
		panic("LoadKeys() not called")
	}

	now := time.Now()
	token := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.RegisteredClaims{
		Audience:  jwtgo.ClaimStrings{Audience},
		ID:        uuid.New().String(),
		IssuedAt:  jwtgo.NewNumericDate(now),
		ExpiresAt: jwtgo.NewNumericDate(now.Add(ttl)),
		Issuer:    Issuer,
		Subject:   subject,
	})

	return token.SignedString(signingKey)
}

// ValidSubject will validate a signed JWT and return its subject
func ValidSubject(signedString string) (string, error) {
	if len(signingKey) == 0 {
		panic("LoadKeys() not called")
	}

	token, err := jwtgo.ParseWithClaims(signedString, &jwtgo.RegisteredClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodHMAC); !ok {
			return nil, errors.New("expected HS256 signing method")
		}

		return signingKey, nil
	})

	if err != nil {
		return "", err
	}

	if token.Valid {
		if claims, ok := token.Claims.(*jwtgo.RegisteredClaims); ok {
			if !containsAudience(claims.Audience, Audience) {
				return "", errors.New("invalid audience")
			}

			if claims.Issuer != Issuer {
				return "", errors.New("invalid issuer")
			}

			if claims.Subject == "" {
				return "", errors.New("missing subject")
			}

			return claims.Subject, nil
		}

		return "", fmt.Errorf("expected jwt.RegisteredClaims, got %T", token.Claims)
	}

	logrus.Warn("token claims were not valid. did not expect to reach this code")
	return "", errors.New("claims were not valid")
}

func containsAudience(audiences jwtgo.ClaimStrings, target string) bool {
	for _, aud := range audiences {
		if aud == target {
			return true
		}
	}
	return false
}
