package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const MinSecretLength = 32

// JWTHandler manages creation and validation of JSON Web Tokens.
type JWTHandler struct {
	// SecretKey is used to sign tokens.
	SecretKey []byte
	// TTL defines how long generated tokens remain valid.
	TTL time.Duration
	// Issuer is stamped on generated tokens and required on validation when set.
	Issuer string
}

// Claims represents application specific JWT claims. The registered subject
// carries the author slug the token was issued for.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// MakeJWTHandler validates the provided secret and returns a configured handler.
func MakeJWTHandler(secret []byte, ttl time.Duration, issuer string) (JWTHandler, error) {
	if len(secret) < MinSecretLength {
		return JWTHandler{}, errors.New("secret key too short")
	}

	if ttl <= 0 {
		return JWTHandler{}, errors.New("token ttl must be positive")
	}

	return JWTHandler{SecretKey: secret, TTL: ttl, Issuer: strings.TrimSpace(issuer)}, nil
}

// Generate creates a signed JWT for the provided subject.
func (j JWTHandler) Generate(subject string) (string, error) {
	subject = strings.TrimSpace(subject)

	if subject == "" {
		return "", errors.New("token subject is required")
	}

	now := time.Now()

	claims := Claims{
		Username: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    j.Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(j.SecretKey)
}

// Validate parses the token string and returns the Claims if valid.
func (j JWTHandler) Validate(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}

	if j.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return j.SecretKey, nil
	}, opts...)

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, errors.New("token subject is missing")
	}

	return claims, nil
}
