package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/service"
	"github.com/rs/zerolog/log"
)

type contextKey string

const (
	claimsKey contextKey = "authClaims"

	// TokenCookie is the cookie carrying the session token in
	// cookie-transport mode.
	TokenCookie = "token"
)

// CookieToHeader normalizes the two token transports before the auth
// gate runs: a token cookie, when present, is injected as the bearer
// Authorization header. The cookie wins over an explicit header so the
// gate has a single source of truth. Requests without credentials pass
// through untouched.
func CookieToHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
			r.Header.Set("Authorization", "Bearer "+cookie.Value)
		}
		next.ServeHTTP(w, r)
	})
}

// Auth rejects requests without a valid bearer token. Every rejection
// uses the same generic body regardless of which check failed.
func Auth(jwtService service.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(parts[1])
			if err != nil {
				log.Debug().Err(err).Msg("token validation failed")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims returns the decoded token claims placed in the context by
// Auth on successful validation.
func GetClaims(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*service.Claims)
	return claims, ok
}

// GetUserID returns the authenticated user's id from the context.
func GetUserID(ctx context.Context) (int64, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return 0, false
	}
	id, err := claims.UserID()
	if err != nil {
		return 0, false
	}
	return id, true
}
