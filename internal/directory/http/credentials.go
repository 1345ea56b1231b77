package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/httpx"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

type CredentialsHandler struct {
	UserService *service.UserService
}

// ServeHTTP checks a login form submission for the identity provider.
//
//	@Summary		Verify credentials
//	@Description	Checks an email and password. Unknown emails, wrong passwords, inactive users and
//	@Description	accounts without a usable password all return 401.
//	@Tags			OpenID
//	@Accept			json
//	@Produce		json
//	@Param			request	body		directorysdk.VerifyCredentialsRequest	true	"Email and password"
//	@Success		200		{object}	directorysdk.VerifyCredentialsResponse	"user_id"
//	@Failure		400		{object}	directorysdk.ErrorResponse				"Malformed body"
//	@Failure		401		{object}	directorysdk.ErrorResponse				"Invalid credentials"
//	@Failure		429		{object}	directorysdk.ErrorResponse				"Rate limited"
//	@Router			/v1/credentials/verify [post].
func (h *CredentialsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req directorysdk.VerifyCredentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.VerifyCredentials(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		directorysdk.ErrInvalidCredentials.WriteError(w)
		return
	case err != nil:
		slogx.FromContext(ctx).Error("credential check failed", "error", err)
		directorysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, directorysdk.VerifyCredentialsResponse{UserID: user.ID})
}
