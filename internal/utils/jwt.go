package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateChallengeToken creates the signed HMAC-SHA256 JWT that binds MFA
// login step 2 to a successful step-1 password check.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the account ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus duration
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
func GenerateChallengeToken(issuer string, userID int64, duration time.Duration, signKey string) (string, error) {
	if issuer == "" || duration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating challenge token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing challenge token: %w", err)
	}

	return tokenString, nil
}

// ValidateChallengeToken verifies a challenge token's signature, issuer and
// expiry, and returns the account ID carried in the subject claim.
func ValidateChallengeToken(tokenString, signKey, issuer string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("error occurred validating challenge token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error occurred getting subject from challenge token: %w", err)
	}
	if subject == "" {
		return 0, errors.New("empty subject in challenge token")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error occurred converting challenge subject: %w", err)
	}

	return userID, nil
}
