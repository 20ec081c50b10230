package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"fieldtrack/internal/domain"
)

// Auth validates the Bearer token and stores the resulting Principal in the
// request context. Requests without a valid token get a 401 before any
// handler runs.
func Auth(validator JWTValidator, users domain.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			claims, err := validator.Validate(r.Context(), strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				writeUnauthorized(w, "invalid token")
				return
			}

			var p domain.Principal
			if id, convErr := strconv.ParseInt(claims.Subject, 10, 64); convErr == nil && id > 0 {
				// Locally issued token: identity travels in the claims.
				p.UserID = id
				if claims.Email != nil {
					p.Email = *claims.Email
				}
				if claims.Role != nil {
					p.Role = domain.ParseRole(*claims.Role)
				} else {
					p.Role = domain.RoleStandard
				}
			} else {
				// IdP token: resolve the account by email claim.
				if claims.Email == nil || users == nil {
					writeUnauthorized(w, "token does not map to a known user")
					return
				}
				u, err := users.GetByEmail(r.Context(), *claims.Email)
				if err != nil {
					writeUnauthorized(w, "token does not map to a known user")
					return
				}
				p = u.Principal()
			}

			ctx := domain.WithPrincipal(r.Context(), p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}
