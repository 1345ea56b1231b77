package http

import (
	"net/http"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/httpx"
)

// MembershipsHandler handles the membership admin endpoints.
type MembershipsHandler struct {
	MembershipService *service.MembershipService
}

// HandleList handles GET /v1/memberships
//
//	@Summary		List memberships
//	@Description	q searches group names and the member's full and preferred names.
//	@Tags			Memberships
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q			query		string	false	"Search text"
//	@Param			user_id		query		string	false	"User ID"
//	@Param			group_id	query		string	false	"Group ID"
//	@Success		200			{object}	directorysdk.ListMembershipsResponse
//	@Router			/v1/memberships [get].
func (h *MembershipsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ms, err := h.MembershipService.List(r.Context(), domain.MembershipFilter{
		UserID:  q.Get("user_id"),
		GroupID: q.Get("group_id"),
		Search:  q.Get("q"),
	})
	if err != nil {
		writeServiceError(w, r, err, "memberships")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, directorysdk.ListMembershipsResponse{Memberships: mapSlice(ms, toMembership)})
}

// HandleCreate handles POST /v1/memberships
//
//	@Summary	Add a user to a group
//	@Tags		Memberships
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		directorysdk.MembershipRequest	true	"User and group"
//	@Success	201		{object}	directorysdk.Membership
//	@Failure	404		{object}	directorysdk.ErrorResponse	"Unknown user or group"
//	@Failure	409		{object}	directorysdk.ErrorResponse	"Already a member"
//	@Router		/v1/memberships [post].
func (h *MembershipsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req directorysdk.MembershipRequest
	if !decodeBody(w, r, &req) {
		return
	}

	m, err := h.MembershipService.Add(r.Context(), req.UserID, req.GroupID)
	if err != nil {
		writeServiceError(w, r, err, "user or group")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMembership(m))
}

// HandleGet handles GET /v1/memberships/{id}
//
//	@Summary	Get membership
//	@Tags		Memberships
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Membership ID"
//	@Success	200	{object}	directorysdk.Membership
//	@Failure	404	{object}	directorysdk.ErrorResponse
//	@Router		/v1/memberships/{id} [get].
func (h *MembershipsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	m, err := h.MembershipService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "membership")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMembership(m))
}

// HandleDelete handles DELETE /v1/memberships/{id}
//
//	@Summary		Remove membership
//	@Description	Removes the user from the group along with every role held through the membership.
//	@Tags			Memberships
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Membership ID"
//	@Success		204	"Membership removed"
//	@Failure		404	{object}	directorysdk.ErrorResponse
//	@Router			/v1/memberships/{id} [delete].
func (h *MembershipsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.MembershipService.Remove(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "membership")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
