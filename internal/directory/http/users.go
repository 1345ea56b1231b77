package http

import (
	"net/http"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/httpx"
)

// UsersHandler handles the user admin endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /v1/users
//
//	@Summary		List users
//	@Description	Lists users ordered by full name. q searches full name, email and preferred name.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q		query		string	false	"Search text"
//	@Param			locale	query		string	false	"Exact locale"
//	@Param			active	query		bool	false	"Active flag"
//	@Success		200		{object}	directorysdk.ListUsersResponse
//	@Failure		400		{object}	directorysdk.ValidationErrorResponse
//	@Failure		401		{object}	directorysdk.ErrorResponse
//	@Failure		403		{object}	directorysdk.ErrorResponse
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	active, err := httpx.QueryBool(r, "active")
	if err != nil {
		directorysdk.NewValidationError("invalid query", map[string]string{"active": "must be true or false"}).
			WriteError(w)
		return
	}

	q := r.URL.Query()
	users, err := h.UserService.List(r.Context(), domain.UserFilter{
		Search: q.Get("q"),
		Locale: q.Get("locale"),
		Active: active,
	})
	if err != nil {
		writeServiceError(w, r, err, "users")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, directorysdk.ListUsersResponse{Users: mapSlice(users, toUser)})
}

// HandleCreate handles POST /v1/users
//
//	@Summary		Create user
//	@Description	Creates an active user. The email is normalized; an empty password leaves the account
//	@Description	without a usable password.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		directorysdk.CreateUserRequest	true	"New user"
//	@Success		201		{object}	directorysdk.User
//	@Failure		400		{object}	directorysdk.ValidationErrorResponse
//	@Failure		403		{object}	directorysdk.ErrorResponse
//	@Failure		409		{object}	directorysdk.ErrorResponse	"Email already registered"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req directorysdk.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if (req.IsStaff || req.IsSuperuser) && !callerIsSuperuser(r) {
		directorysdk.NewAPIError(http.StatusForbidden, directorysdk.ErrorCodeAccessDenied,
			"only superusers may create staff accounts").WriteError(w)
		return
	}

	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	u, err := h.UserService.Create(r.Context(), service.NewUser{
		UserProfile: service.UserProfile{
			Email:         req.Email,
			GivenName:     req.GivenName,
			MiddleName:    req.MiddleName,
			FamilyName:    req.FamilyName,
			FullName:      req.FullName,
			PreferredName: req.PreferredName,
			Locale:        req.Locale,
			PhoneNumber:   req.PhoneNumber,
			DateOfBirth:   dob,
		},
		Password:    req.Password,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUser(u))
}

// HandleGet handles GET /v1/users/{id}
//
//	@Summary	Get user
//	@Tags		Users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	directorysdk.User
//	@Failure	404	{object}	directorysdk.ErrorResponse
//	@Router		/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleUpdate handles PATCH /v1/users/{id}
//
//	@Summary		Update user
//	@Description	Changes the fields present in the body in one transaction. Changing is_staff, is_active
//	@Description	or is_superuser, or the profile of a staff account, requires a superuser caller.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"User ID"
//	@Param			request	body		directorysdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	directorysdk.User
//	@Failure		400		{object}	directorysdk.ValidationErrorResponse
//	@Failure		403		{object}	directorysdk.ErrorResponse
//	@Failure		404		{object}	directorysdk.ErrorResponse
//	@Failure		409		{object}	directorysdk.ErrorResponse	"Email already registered"
//	@Router			/v1/users/{id} [patch].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req directorysdk.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	flagsChanged := req.IsStaff != nil || req.IsActive != nil || req.IsSuperuser != nil
	if flagsChanged && !callerIsSuperuser(r) {
		directorysdk.NewAPIError(http.StatusForbidden, directorysdk.ErrorCodeAccessDenied,
			"only superusers may change account flags").WriteError(w)
		return
	}

	u, err := h.UserService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}

	var profile *service.UserProfile
	if profileChanged(req) {
		if !mayManage(w, r, u) {
			return
		}

		p := service.ProfileOf(u)
		set(&p.Email, req.Email)
		set(&p.GivenName, req.GivenName)
		set(&p.MiddleName, req.MiddleName)
		set(&p.FamilyName, req.FamilyName)
		set(&p.FullName, req.FullName)
		set(&p.PreferredName, req.PreferredName)
		set(&p.Locale, req.Locale)
		set(&p.PhoneNumber, req.PhoneNumber)
		if req.DateOfBirth != nil {
			if p.DateOfBirth, err = parseDate("date_of_birth", *req.DateOfBirth); err != nil {
				writeServiceError(w, r, err, "user")
				return
			}
		}
		profile = &p
	}

	var flags *service.UserFlags
	if flagsChanged {
		f := service.UserFlags{IsStaff: u.IsStaff, IsActive: u.IsActive, IsSuperuser: u.IsSuperuser}
		set(&f.IsStaff, req.IsStaff)
		set(&f.IsActive, req.IsActive)
		set(&f.IsSuperuser, req.IsSuperuser)
		flags = &f
	}

	if profile != nil || flags != nil {
		if u, err = h.UserService.Update(ctx, id, profile, flags); err != nil {
			writeServiceError(w, r, err, "user")
			return
		}
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

func profileChanged(req directorysdk.UpdateUserRequest) bool {
	return req.Email != nil || req.GivenName != nil || req.MiddleName != nil || req.FamilyName != nil ||
		req.FullName != nil || req.PreferredName != nil || req.Locale != nil || req.PhoneNumber != nil ||
		req.DateOfBirth != nil
}

// HandleDeactivate handles POST /v1/users/{id}/deactivate
//
//	@Summary		Deactivate user
//	@Description	Clears the active flag. Inactive users cannot sign in and receive no claims.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	directorysdk.User
//	@Failure		403	{object}	directorysdk.ErrorResponse	"Staff accounts need a superuser caller"
//	@Failure		404	{object}	directorysdk.ErrorResponse
//	@Router			/v1/users/{id}/deactivate [post].
func (h *UsersHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.loadManaged(w, r); !ok {
		return
	}

	u, err := h.UserService.Deactivate(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleSetPassword handles PUT /v1/users/{id}/password
//
//	@Summary		Set password
//	@Description	Replaces the user's password. An empty password makes it unusable.
//	@Tags			Users
//	@Accept			json
//	@Security		BearerAuth
//	@Param			id		path	string							true	"User ID"
//	@Param			request	body	directorysdk.SetPasswordRequest	true	"New password"
//	@Success		204		"Password changed"
//	@Failure		400		{object}	directorysdk.ValidationErrorResponse
//	@Failure		403		{object}	directorysdk.ErrorResponse	"Staff accounts need a superuser caller"
//	@Failure		404		{object}	directorysdk.ErrorResponse
//	@Router			/v1/users/{id}/password [put].
func (h *UsersHandler) HandleSetPassword(w http.ResponseWriter, r *http.Request) {
	var req directorysdk.SetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if _, ok := h.loadManaged(w, r); !ok {
		return
	}

	if err := h.UserService.SetPassword(r.Context(), r.PathValue("id"), req.Password); err != nil {
		writeServiceError(w, r, err, "user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadManaged fetches the user named by the path and checks the caller may
// manage it, writing the error response when not.
func (h *UsersHandler) loadManaged(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	u, err := h.UserService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "user")
		return domain.User{}, false
	}
	return u, mayManage(w, r, u)
}

// mayManage reports whether the caller may change target's profile, password
// or active state. Staff and superuser accounts are managed by superusers only.
func mayManage(w http.ResponseWriter, r *http.Request, target domain.User) bool {
	if (target.IsStaff || target.IsSuperuser) && !callerIsSuperuser(r) {
		directorysdk.NewAPIError(http.StatusForbidden, directorysdk.ErrorCodeAccessDenied,
			"only superusers may manage staff accounts").WriteError(w)
		return false
	}
	return true
}

func callerIsSuperuser(r *http.Request) bool {
	u, ok := callerFromContext(r.Context())
	return ok && u.IsSuperuser
}
