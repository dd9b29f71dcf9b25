package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/smolin2019/vehicle-auction-service/internal/jwt"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token has been revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenString string) (bool, error)
}

// authErrorResponse is the JSON body written on authentication failure.
type authErrorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that validates the bearer token,
// rejects revoked tokens, and stores the claims in the request context.
func AuthMiddleware(tokener Tokener, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w)
				return
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(ctx, tokenString)
				if err != nil {
					logger.Log.Errorw("failed to check token revocation", "err", err)
					writeAuthError(w)
					return
				}
				if isRevoked {
					logger.Log.Errorw("rejected revoked token", "user_id", claims.UserID)
					writeAuthError(w)
					return
				}
			}

			ctx = SetClaimsToContext(ctx, claims)
			ctx = SetTokenToContext(ctx, tokenString)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(authErrorResponse{Error: "Not authenticated"})
}

// claimsKey is an unexported type for claims in context
type claimsKey struct{}

// tokenKey is an unexported type for the raw token in context
type tokenKey struct{}

// SetClaimsToContext stores token claims in the context
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaimsFromContext retrieves the claims from the context. Returns nil if not present.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims
}

// SetTokenToContext stores the raw token string in the context
func SetTokenToContext(ctx context.Context, tokenString string) context.Context {
	return context.WithValue(ctx, tokenKey{}, tokenString)
}

// GetTokenFromContext retrieves the raw token string from the context.
func GetTokenFromContext(ctx context.Context) string {
	tokenString, _ := ctx.Value(tokenKey{}).(string)
	return tokenString
}
