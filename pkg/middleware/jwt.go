package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/inkwell/pkg/auth"
	"github.com/inkwell/pkg/endpoint"
	"github.com/inkwell/pkg/limiter"
	"github.com/inkwell/pkg/portal"
)

type jwtContextKey string

const JWTClaimsKey jwtContextKey = "jwt.claims"

const (
	FailureWindow     = time.Minute
	MaxFailedAttempts = 10
)

// JWTMiddleware validates Authorization Bearer tokens and injects claims into the request context.
type JWTMiddleware struct {
	Handler auth.JWTHandler
	// failures throttles clients that keep sending bad tokens.
	failures *limiter.MemoryLimiter
}

func MakeJWTMiddleware(handler auth.JWTHandler) JWTMiddleware {
	return JWTMiddleware{
		Handler:  handler,
		failures: limiter.NewMemoryLimiter(FailureWindow, MaxFailedAttempts),
	}
}

// Handle checks the Authorization header for a valid JWT token. A valid token
// always passes. Failures are counted per peer address and, past the limit,
// answered with 429 instead of 401.
func (m JWTMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		claims, reason, err := m.authenticate(r)

		if err != nil {
			clientIP := portal.RemoteHost(r)

			if m.failures != nil && m.failures.TooMany(clientIP) {
				return endpoint.TooManyRequests(
					"too many authentication attempts",
					fmt.Errorf("client [%s] exceeded %d failed attempts: %w", clientIP, MaxFailedAttempts, err),
				)
			}

			m.fail(clientIP)

			return endpoint.LogUnauthorisedError(reason, err)
		}

		ctx := context.WithValue(r.Context(), JWTClaimsKey, claims)
		ctx = context.WithValue(ctx, portal.AuthSubjectKey, claims.Subject)

		return next(w, r.WithContext(ctx))
	}
}

func (m JWTMiddleware) authenticate(r *http.Request) (*auth.Claims, string, error) {
	header := strings.TrimSpace(r.Header.Get(portal.AuthorizationHeader))

	if !strings.HasPrefix(strings.ToLower(header), portal.BearerPrefix) {
		return nil, "missing or invalid authorization header", errors.New("bearer token not provided")
	}

	tokenStr := strings.TrimSpace(header[len(portal.BearerPrefix):])
	claims, err := m.Handler.Validate(tokenStr)

	if err != nil {
		return nil, "invalid token", err
	}

	return claims, "", nil
}

func (m JWTMiddleware) fail(clientIP string) {
	if m.failures != nil {
		m.failures.Fail(clientIP)
	}
}

// GetJWTClaims extracts JWT claims from the context.
func GetJWTClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(JWTClaimsKey).(*auth.Claims)

	return claims, ok
}

// GetAuthSubject returns the subject of the authenticated token, if any.
func GetAuthSubject(ctx context.Context) string {
	subject, _ := ctx.Value(portal.AuthSubjectKey).(string)

	return subject
}
