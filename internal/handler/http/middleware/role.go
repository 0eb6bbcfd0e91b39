package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

// RequireHR gates HR-only routes on the role claim.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHRPrivilegeRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrHRPrivilegeRequired)
			return
		}

		if user.Role(roleStr) != user.RoleHR {
			response.HandleError(w, user.ErrHRPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
