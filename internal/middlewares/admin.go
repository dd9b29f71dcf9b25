package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/smolin2019/vehicle-auction-service/internal/logger"
)

// AdminMiddleware returns a middleware that allows only users whose claims
// carry the administrator flag. It must run after AuthMiddleware. The check
// is the binary admin flag only; no resource ownership is considered.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaimsFromContext(r.Context())
		if claims == nil {
			writeAuthError(w)
			return
		}

		if !claims.IsAdmin {
			logger.Log.Errorw("admin access denied", "user_id", claims.UserID, "username", claims.Username)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(authErrorResponse{Error: "Unauthorized"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
