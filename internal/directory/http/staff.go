package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/httpx"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

type callerKey struct{}

// callerFromContext returns the user loaded by RequireStaff.
func callerFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(callerKey{}).(domain.User)
	return u, ok
}

// RequireStaff resolves the token subject to a user and only lets active
// staff through. Runs after httpx.AuthnMiddleware.
func RequireStaff(users *service.UserService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID, ok := httpx.UserIDFromContext(ctx)
			if !ok {
				httpx.WriteBearerError(w, "token has no subject")
				return
			}

			u, err := users.Get(ctx, userID)
			switch {
			case errors.Is(err, service.ErrNotFound):
				httpx.WriteBearerError(w, "unknown user")
				return
			case err != nil:
				log.Error("failed to load caller", "error", err)
				directorysdk.ErrServerError.WriteError(w)
				return
			}

			if !u.IsActive || !u.IsStaff {
				log.Warn("admin access denied", "active", u.IsActive, "staff", u.IsStaff)
				directorysdk.ErrAccessDenied.WriteError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, callerKey{}, u)))
		})
	}
}
