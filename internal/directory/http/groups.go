package http

import (
	"net/http"

	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/httpx"
)

// GroupsHandler handles the group admin endpoints.
type GroupsHandler struct {
	GroupService *service.GroupService
}

// HandleList handles GET /v1/groups
//
//	@Summary		List groups
//	@Description	Lists groups ordered by short name. q searches name, short name and slug.
//	@Tags			Groups
//	@Produce		json
//	@Security		BearerAuth
//	@Param			q	query		string	false	"Search text"
//	@Success		200	{object}	directorysdk.ListGroupsResponse
//	@Router			/v1/groups [get].
func (h *GroupsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	groups, err := h.GroupService.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, "groups")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, directorysdk.ListGroupsResponse{Groups: mapSlice(groups, toGroup)})
}

// HandleCreate handles POST /v1/groups
//
//	@Summary	Create group
//	@Tags		Groups
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		directorysdk.GroupRequest	true	"New group"
//	@Success	201		{object}	directorysdk.Group
//	@Failure	400		{object}	directorysdk.ValidationErrorResponse
//	@Failure	409		{object}	directorysdk.ErrorResponse	"Slug already in use"
//	@Router		/v1/groups [post].
func (h *GroupsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req directorysdk.GroupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	g, err := h.GroupService.Create(r.Context(), service.GroupInput{
		Name:      req.Name,
		ShortName: req.ShortName,
		Slug:      req.Slug,
	})
	if err != nil {
		writeServiceError(w, r, err, "group")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toGroup(g))
}

// HandleGet handles GET /v1/groups/{id}
//
//	@Summary	Get group
//	@Tags		Groups
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Group ID"
//	@Success	200	{object}	directorysdk.Group
//	@Failure	404	{object}	directorysdk.ErrorResponse
//	@Router		/v1/groups/{id} [get].
func (h *GroupsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	g, err := h.GroupService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "group")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGroup(g))
}

// HandleUpdate handles PATCH /v1/groups/{id}
//
//	@Summary	Update group
//	@Tags		Groups
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"Group ID"
//	@Param		request	body		directorysdk.UpdateGroupRequest	true	"Fields to change"
//	@Success	200		{object}	directorysdk.Group
//	@Failure	400		{object}	directorysdk.ValidationErrorResponse
//	@Failure	404		{object}	directorysdk.ErrorResponse
//	@Failure	409		{object}	directorysdk.ErrorResponse	"Slug already in use"
//	@Router		/v1/groups/{id} [patch].
func (h *GroupsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req directorysdk.UpdateGroupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	g, err := h.GroupService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, r, err, "group")
		return
	}

	in := service.GroupInput{Name: g.Name, ShortName: g.ShortName, Slug: g.Slug}
	set(&in.Name, req.Name)
	set(&in.ShortName, req.ShortName)
	set(&in.Slug, req.Slug)

	if g, err = h.GroupService.Update(ctx, id, in); err != nil {
		writeServiceError(w, r, err, "group")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGroup(g))
}

// HandleDelete handles DELETE /v1/groups/{id}
//
//	@Summary		Delete group
//	@Description	Deletes the group together with its memberships and their roles.
//	@Tags			Groups
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Group ID"
//	@Success		204	"Group deleted"
//	@Failure		404	{object}	directorysdk.ErrorResponse
//	@Router			/v1/groups/{id} [delete].
func (h *GroupsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.GroupService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "group")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
