package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/httpx"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

type UserInfoHandler struct {
	UserService   *service.UserService
	ClaimsService *service.ClaimsService
}

// ServeHTTP handles the OpenID Connect UserInfo endpoint.
//
//	@Summary		Get user claims
//	@Description	Returns the claims released to the access token's scopes. sub is always present;
//	@Description	profile, email, groups and roles claims follow the matching scopes.
//	@Tags			OpenID
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	directorysdk.UserInfoResponse	"Claims"
//	@Failure		401	{object}	directorysdk.ErrorResponse		"Invalid token, or the user is unknown or inactive"
//	@Failure		403	{object}	directorysdk.ErrorResponse		"Token lacks the openid scope"
//	@Failure		500	{object}	directorysdk.ErrorResponse		"Internal server error"
//	@Router			/v1/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteBearerError(w, "token has no subject")
		return
	}

	user, err := h.UserService.Get(ctx, userID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		log.Info("userinfo for unknown user")
		httpx.WriteBearerError(w, "unknown user")
		return
	case err != nil:
		log.Error("failed to load user", "error", err)
		directorysdk.ErrServerError.WriteError(w)
		return
	}
	if !user.IsActive {
		log.Info("userinfo for inactive user")
		httpx.WriteBearerError(w, "user is inactive")
		return
	}

	claims, err := h.ClaimsService.Claims(ctx, user, httpx.ScopesFromContext(ctx))
	if err != nil {
		log.Error("failed to build claims", "error", err)
		directorysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, claims)
}
