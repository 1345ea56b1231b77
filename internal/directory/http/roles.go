package http

import (
	"net/http"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/httpx"
)

// RolesHandler handles the role admin endpoints.
type RolesHandler struct {
	RoleService *service.RoleService
}

// HandleList handles GET /v1/roles
//
//	@Summary		List roles
//	@Description	q searches group names, the holder's names and the responsibility name.
//	@Tags			Roles
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q					query		string	false	"Search text"
//	@Param			user_id				query		string	false	"User ID"
//	@Param			group_id			query		string	false	"Group ID"
//	@Param			responsibility_id	query		string	false	"Responsibility ID"
//	@Success		200					{object}	directorysdk.ListRolesResponse
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	roles, err := h.RoleService.List(r.Context(), domain.RoleFilter{
		UserID:           q.Get("user_id"),
		GroupID:          q.Get("group_id"),
		ResponsibilityID: q.Get("responsibility_id"),
		Search:           q.Get("q"),
	})
	if err != nil {
		writeServiceError(w, r, err, "roles")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, directorysdk.ListRolesResponse{Roles: mapSlice(roles, toRole)})
}

// HandleCreate handles POST /v1/roles
//
//	@Summary		Assign role
//	@Description	Grants a responsibility to a membership. Unavailable responsibilities are rejected with 422.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		directorysdk.RoleRequest	true	"Membership and responsibility"
//	@Success		201		{object}	directorysdk.Role
//	@Failure		404		{object}	directorysdk.ErrorResponse	"Unknown membership or responsibility"
//	@Failure		409		{object}	directorysdk.ErrorResponse	"Role already held"
//	@Failure		422		{object}	directorysdk.ErrorResponse	"Responsibility unavailable"
//	@Router			/v1/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req directorysdk.RoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	role, err := h.RoleService.Assign(r.Context(), req.MembershipID, req.ResponsibilityID)
	if err != nil {
		writeServiceError(w, r, err, "membership or responsibility")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toRole(role))
}

// HandleGet handles GET /v1/roles/{id}
//
//	@Summary	Get role
//	@Tags		Roles
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Role ID"
//	@Success	200	{object}	directorysdk.Role
//	@Failure	404	{object}	directorysdk.ErrorResponse
//	@Router		/v1/roles/{id} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	role, err := h.RoleService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "role")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRole(role))
}

// HandleDelete handles DELETE /v1/roles/{id}
//
//	@Summary	Revoke role
//	@Tags		Roles
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Role ID"
//	@Success	204	"Role revoked"
//	@Failure	404	{object}	directorysdk.ErrorResponse
//	@Router		/v1/roles/{id} [delete].
func (h *RolesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.RoleService.Revoke(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "role")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
